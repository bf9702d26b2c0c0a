package dashboard

import (
	"context"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/fetch"
	"github.com/jakartamandarin/console/core/student"
	"github.com/jakartamandarin/console/core/user"
)

type (
	// Gateway is the slice of the backend the admin dashboard consumes.
	Gateway interface {
		ListUsers(ctx context.Context, activeOnly bool) ([]user.Record, error)
		ListClasses(ctx context.Context) ([]student.ClassRecord, error)
		ListInvoices(ctx context.Context) ([]Invoice, error)
	}

	Service struct {
		gw  Gateway
		log core.Logger
	}
)

func NewService(gw Gateway, log core.Logger) *Service {
	return &Service{gw: gw, log: log}
}

// ViewState is the admin dashboard snapshot. Every field is owned by
// exactly one of the three concurrent reads, so one failing read
// reverts only its own section to the defaults below.
type ViewState struct {
	Loading         bool
	TotalUsers      int
	ActiveClasses   int
	PendingInvoices int
	RecentInvoices  []Invoice
}

// Load fans out the three independent reads and assembles the view
// state from whatever each one produced.
func (svc *Service) Load(ctx context.Context) (vs ViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()
	vs.RecentInvoices = []Invoice{}

	var g fetch.Group

	fetch.Go(&g, ctx, func(ctx context.Context) []user.Record {
		return fetch.Collection(ctx, svc.log, "dashboard: active users", func(ctx context.Context) ([]user.Record, error) {
			return svc.gw.ListUsers(ctx, true)
		})
	}, func(users []user.Record) { vs.TotalUsers = len(users) })

	fetch.Go(&g, ctx, func(ctx context.Context) []student.ClassRecord {
		return fetch.Collection(ctx, svc.log, "dashboard: classes", svc.gw.ListClasses)
	}, func(classes []student.ClassRecord) { vs.ActiveClasses = len(classes) })

	fetch.Go(&g, ctx, func(ctx context.Context) []Invoice {
		return fetch.Collection(ctx, svc.log, "dashboard: invoices", svc.gw.ListInvoices)
	}, func(invoices []Invoice) {
		pending := make([]Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if inv.Status == StatusPending {
				pending = append(pending, inv)
			}
		}
		vs.PendingInvoices = len(pending)
		vs.RecentInvoices = pending
	})

	g.Wait()
	return vs
}
