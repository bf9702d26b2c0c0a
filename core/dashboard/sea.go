package dashboard

import (
	"context"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/fetch"
	"github.com/jakartamandarin/console/core/user"
)

type (
	// SEAGateway is the slice of the backend the sales dashboard consumes.
	SEAGateway interface {
		ListUsers(ctx context.Context, activeOnly bool) ([]user.Record, error)
	}

	SEAService struct {
		gw          SEAGateway
		log         core.Logger
		showSamples bool
	}
)

func NewSEAService(gw SEAGateway, log core.Logger, showSamples bool) *SEAService {
	return &SEAService{gw: gw, log: log, showSamples: showSamples}
}

// SEAViewState is the sales-admin dashboard snapshot.
type SEAViewState struct {
	Loading        bool
	ActiveStudents int
	Pipeline       []LeadRow
}

func (svc *SEAService) Load(ctx context.Context) (vs SEAViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()
	vs.Pipeline = []LeadRow{}

	users := fetch.Collection(ctx, svc.log, "sea: active users", func(ctx context.Context) ([]user.Record, error) {
		return svc.gw.ListUsers(ctx, true)
	})
	vs.ActiveStudents = len(users)

	if svc.showSamples {
		vs.Pipeline = sampleLeads
	}
	return vs
}
