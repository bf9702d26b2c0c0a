package fetch

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                        {}
func (nopLogger) Debug(string, ...interface{})       {}
func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Fatal(msg string, _ ...interface{}) { panic(msg) }

func TestCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces the default", func(t *testing.T) {
		got := Collection(ctx, nopLogger{}, "test", func(context.Context) ([]int, error) {
			return []int{1, 2, 3}, nil
		})
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("nil result becomes empty, not nil", func(t *testing.T) {
		got := Collection(ctx, nopLogger{}, "test", func(context.Context) ([]int, error) {
			return nil, nil
		})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("failure degrades to empty", func(t *testing.T) {
		got := Collection(ctx, nopLogger{}, "test", func(context.Context) ([]int, error) {
			return []int{9}, errors.New("boom")
		})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestObject(t *testing.T) {
	ctx := context.Background()

	type stats struct{ Total int }

	t.Run("success", func(t *testing.T) {
		got := Object(ctx, nopLogger{}, "test", stats{}, func(context.Context) (stats, error) {
			return stats{Total: 7}, nil
		})
		assert.Equal(t, stats{Total: 7}, got)
	})

	t.Run("failure keeps the exact default", func(t *testing.T) {
		got := Object(ctx, nopLogger{}, "test", stats{}, func(context.Context) (stats, error) {
			return stats{Total: 9}, errors.New("boom")
		})
		assert.Equal(t, stats{}, got)
	})
}

func TestGroup(t *testing.T) {
	t.Run("independent merges all land", func(t *testing.T) {
		var a, b int
		var g Group
		ctx := context.Background()

		Go(&g, ctx, func(context.Context) int { return 1 }, func(v int) { a = v })
		Go(&g, ctx, func(context.Context) int { return 2 }, func(v int) { b = v })
		g.Wait()

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})

	t.Run("canceled context suppresses the merge", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var merged bool
		var g Group
		Go(&g, ctx, func(ctx context.Context) int {
			cancel() // the page goes away while the read is in flight
			return 42
		}, func(int) { merged = true })
		g.Wait()

		assert.False(t, merged)
	})

	t.Run("slow reads still finish", func(t *testing.T) {
		var got int
		var g Group
		Go(&g, context.Background(), func(context.Context) int {
			time.Sleep(10 * time.Millisecond)
			return 5
		}, func(v int) { got = v })
		g.Wait()

		assert.Equal(t, 5, got)
	})
}
