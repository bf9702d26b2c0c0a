package student

import (
	"context"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/fetch"
)

type (
	// Gateway is the slice of the backend the self-service pages consume.
	Gateway interface {
		MyClasses(ctx context.Context) ([]ClassRecord, error)
		ClassesStats(ctx context.Context) (ClassesStats, error)
		MyAttendance(ctx context.Context) ([]AttendanceRecord, error)
		AttendanceStats(ctx context.Context) (AttendanceStats, error)
	}

	Service struct {
		gw  Gateway
		log core.Logger
	}
)

func NewService(gw Gateway, log core.Logger) *Service {
	return &Service{gw: gw, log: log}
}

// ClassesViewState is the render-ready snapshot of the My Classes page.
type ClassesViewState struct {
	Loading bool
	Classes []ClassRecord
	Stats   ClassesStats
}

// AttendanceViewState is the render-ready snapshot of the My
// Attendance page.
type AttendanceViewState struct {
	Loading bool
	Records []AttendanceRecord
	Stats   AttendanceStats
}

// LoadClasses acquires the class list and its stats concurrently;
// each read owns its own field and degrades independently.
func (svc *Service) LoadClasses(ctx context.Context) (vs ClassesViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()
	vs.Classes = []ClassRecord{}

	var g fetch.Group
	fetch.Go(&g, ctx, func(ctx context.Context) []ClassRecord {
		return fetch.Collection(ctx, svc.log, "student: my classes", svc.gw.MyClasses)
	}, func(classes []ClassRecord) { vs.Classes = classes })

	fetch.Go(&g, ctx, func(ctx context.Context) ClassesStats {
		return fetch.Object(ctx, svc.log, "student: classes stats", ClassesStats{}, svc.gw.ClassesStats)
	}, func(stats ClassesStats) { vs.Stats = stats })

	g.Wait()
	return vs
}

// LoadAttendance acquires the attendance history and its stats
// concurrently, same contract as LoadClasses.
func (svc *Service) LoadAttendance(ctx context.Context) (vs AttendanceViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()
	vs.Records = []AttendanceRecord{}

	var g fetch.Group
	fetch.Go(&g, ctx, func(ctx context.Context) []AttendanceRecord {
		return fetch.Collection(ctx, svc.log, "student: my attendance", svc.gw.MyAttendance)
	}, func(records []AttendanceRecord) { vs.Records = records })

	fetch.Go(&g, ctx, func(ctx context.Context) AttendanceStats {
		return fetch.Object(ctx, svc.log, "student: attendance stats", AttendanceStats{}, svc.gw.AttendanceStats)
	}, func(stats AttendanceStats) { vs.Stats = stats })

	g.Wait()
	return vs
}
