package dashboard

import (
	"context"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/fetch"
)

type (
	// SSCGateway is the slice of the backend the student-success
	// dashboard consumes.
	SSCGateway interface {
		SSCStats(ctx context.Context) (SSCStats, error)
	}

	SSCService struct {
		gw          SSCGateway
		log         core.Logger
		showSamples bool
	}
)

func NewSSCService(gw SSCGateway, log core.Logger, showSamples bool) *SSCService {
	return &SSCService{gw: gw, log: log, showSamples: showSamples}
}

// SSCViewState is the student-success dashboard snapshot. Stats keeps
// its zeroed value when the read fails.
type SSCViewState struct {
	Loading   bool
	Stats     SSCStats
	FollowUps []FollowUpRow
}

func (svc *SSCService) Load(ctx context.Context) (vs SSCViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()
	vs.FollowUps = []FollowUpRow{}

	vs.Stats = fetch.Object(ctx, svc.log, "ssc: stats", SSCStats{}, svc.gw.SSCStats)

	if svc.showSamples {
		vs.FollowUps = sampleFollowUps
	}
	return vs
}
