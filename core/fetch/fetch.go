// Package fetch implements the one data-acquisition contract every
// page controller composes: issue a remote read, replace the owned
// view-state keys on success, keep the documented default on any
// failure. Failures never propagate past the acquisition cycle and
// there are no retries.
package fetch

import (
	"context"
	"sync"

	"github.com/jakartamandarin/console/core"
)

// Collection acquires a remote collection, degrading to an empty
// (never nil) slice when the read fails for any reason.
func Collection[T any](ctx context.Context, log core.Logger, name string, call func(context.Context) ([]T, error)) []T {
	out, err := call(ctx)
	if err != nil {
		log.Warn(name+": read failed, keeping empty default", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Object acquires a single remote value, degrading to def when the
// read fails. def is typically the zeroed stats struct, so a failing
// fetch yields exactly the documented defaults and nothing partial.
func Object[T any](ctx context.Context, log core.Logger, name string, def T, call func(context.Context) (T, error)) T {
	out, err := call(ctx)
	if err != nil {
		log.Warn(name+": read failed, keeping default", err)
		return def
	}
	return out
}

// Group fans out the independent reads of one page. Each read merges
// into a disjoint set of view-state fields, so a failure in one read
// never invalidates the others and no ordering between them may be
// relied upon.
type Group struct {
	wg sync.WaitGroup
}

func (g *Group) Wait() {
	g.wg.Wait()
}

// Go runs acquire concurrently and hands its result to merge, unless
// ctx was canceled in the meantime: a read completing after the page
// is gone must not write into its view state.
func Go[T any](g *Group, ctx context.Context, acquire func(context.Context) T, merge func(T)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		res := acquire(ctx)
		if ctx.Err() != nil {
			return
		}
		merge(res)
	}()
}
