package student_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakartamandarin/console/core/student"
	testutil "github.com/jakartamandarin/console/tests"
)

func seed(b *testutil.Backend) {
	b.MyClassRecords = []student.ClassRecord{
		{ID: "k1", Name: "HSK 2 Evening", Level: "HSK 2", Teacher: "Budi Laoshi", Schedule: "Tue 19:00", Progress: 60, Status: "active"},
		{ID: "k2", Name: "Conversation Club", Level: "Intermediate", Teacher: "Sari Chen", Schedule: "Sat 10:00", Progress: 30, Status: "active"},
	}
	b.ClassesStats = student.ClassesStats{TotalClasses: 2, ActiveClasses: 2, CompletedSessions: 18, UpcomingSessions: 6}
	b.Attendance = []student.AttendanceRecord{
		{ID: "a1", ClassName: "HSK 2 Evening", Date: "2024-05-28", Status: "present"},
		{ID: "a2", ClassName: "HSK 2 Evening", Date: "2024-06-04", Status: "late", Notes: "traffic"},
	}
	b.AttendanceStats = student.AttendanceStats{TotalSessions: 20, Present: 17, Absent: 1, Late: 2, AttendanceRate: 85}
}

func TestService_LoadClasses(t *testing.T) {
	ctx := context.Background()

	t.Run("list and stats both land", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		seed(backend)
		svc := student.NewService(backend.NewClient(nil), testutil.NewLogger(t))

		vs := svc.LoadClasses(ctx)
		assert.False(t, vs.Loading)
		assert.Len(t, vs.Classes, 2)
		assert.Equal(t, backend.ClassesStats, vs.Stats)
	})

	t.Run("failing stats read leaves the list intact", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		seed(backend)
		backend.FailRoute("GET /student/classes-stats", "")
		svc := student.NewService(backend.NewClient(nil), testutil.NewLogger(t))

		vs := svc.LoadClasses(ctx)
		assert.Len(t, vs.Classes, 2)
		assert.Equal(t, student.ClassesStats{}, vs.Stats)
	})

	t.Run("failing list read leaves the stats intact", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		seed(backend)
		backend.FailRoute("GET /kelas/my-classes", "")
		svc := student.NewService(backend.NewClient(nil), testutil.NewLogger(t))

		vs := svc.LoadClasses(ctx)
		assert.NotNil(t, vs.Classes)
		assert.Empty(t, vs.Classes)
		assert.Equal(t, backend.ClassesStats, vs.Stats)
	})
}

func TestService_LoadAttendance(t *testing.T) {
	ctx := context.Background()

	t.Run("history and stats both land", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		seed(backend)
		svc := student.NewService(backend.NewClient(nil), testutil.NewLogger(t))

		vs := svc.LoadAttendance(ctx)
		assert.Len(t, vs.Records, 2)
		assert.Equal(t, backend.AttendanceStats, vs.Stats)
	})

	t.Run("backend fully down renders the empty page", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		seed(backend)
		svc := student.NewService(backend.NewClient(nil), testutil.NewLogger(t))
		backend.Close()

		vs := svc.LoadAttendance(ctx)
		assert.NotNil(t, vs.Records)
		assert.Empty(t, vs.Records)
		assert.Equal(t, student.AttendanceStats{}, vs.Stats)
	})
}
