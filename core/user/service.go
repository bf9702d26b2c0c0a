package user

import (
	"context"
	"errors"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/fetch"
)

// ErrNotConfirmed guards the irreversible delete: without an explicit
// confirmation no request is issued at all.
var ErrNotConfirmed = errors.New("deletion not confirmed")

type (
	// Gateway is the slice of the backend this page consumes.
	Gateway interface {
		ListUsers(ctx context.Context, activeOnly bool) ([]Record, error)
		CreateUser(ctx context.Context, nu NewUser) (Record, error)
		UpdateUser(ctx context.Context, id string, uu UpdateUser) (Record, error)
		DeleteUser(ctx context.Context, id string) error
	}

	Service struct {
		gw     Gateway
		log    core.Logger
		notify core.Notifier
	}
)

func NewService(gw Gateway, log core.Logger, notify core.Notifier) *Service {
	return &Service{gw: gw, log: log, notify: notify}
}

// ViewState is the render-ready snapshot of the user management page.
type ViewState struct {
	Loading bool
	Users   []Record
}

// Load acquires the page's single collection; a failing read leaves
// an empty table, never an error.
func (svc *Service) Load(ctx context.Context) (vs ViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()

	vs.Users = svc.List(ctx)
	return vs
}

// List fetches all users, degrading to an empty slice on failure.
func (svc *Service) List(ctx context.Context) []Record {
	return fetch.Collection(ctx, svc.log, "users: list", func(ctx context.Context) ([]Record, error) {
		return svc.gw.ListUsers(ctx, false)
	})
}

// Create validates client-side first (an invalid form never reaches
// the network), then posts and refetches the collection. A non-nil
// error keeps the create dialog open.
func (svc *Service) Create(ctx context.Context, nu NewUser) ([]Record, error) {
	if err := nu.Validate(); err != nil {
		return nil, err
	}
	if _, err := svc.gw.CreateUser(ctx, nu); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not create the user"))
		return nil, err
	}
	svc.notify.Success("user created")
	return svc.List(ctx), nil
}

// Update follows the same validate/post/refetch cycle as Create.
func (svc *Service) Update(ctx context.Context, id string, uu UpdateUser) ([]Record, error) {
	if err := uu.Validate(); err != nil {
		return nil, err
	}
	if _, err := svc.gw.UpdateUser(ctx, id, uu); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not update the user"))
		return nil, err
	}
	svc.notify.Success("user updated")
	return svc.List(ctx), nil
}

// Delete issues the deletion once confirmed and then refetches the
// collection regardless of the outcome: the table always reflects the
// backend's current truth even when the delete itself failed.
func (svc *Service) Delete(ctx context.Context, id string, confirmed bool) ([]Record, error) {
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	err := svc.gw.DeleteUser(ctx, id)
	if err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not delete the user"))
	} else {
		svc.notify.Success("user deleted")
	}
	return svc.List(ctx), err
}
