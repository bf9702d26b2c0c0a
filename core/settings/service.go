package settings

import (
	"context"
	"sort"

	"github.com/jakartamandarin/console/core"
)

type (
	// Gateway is the slice of the backend the settings panel consumes.
	Gateway interface {
		Settings(ctx context.Context) ([]Setting, error)
		SaveSettings(ctx context.Context, batch []Setting) error
		TestEmail(ctx context.Context) error
		Backup(ctx context.Context) error
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

// ViewState is the settings panel snapshot.
type ViewState struct {
	Loading bool
	Values  Bag
}

// Load fetches the whole bag. Unlike the silent page reads elsewhere,
// a failing settings load surfaces an error notice along with the
// empty bag.
func (svc *Service) Load(ctx context.Context) (vs ViewState) {
	vs.Loading = true
	defer func() { vs.Loading = false }()

	items, err := svc.gw.Settings(ctx)
	if err != nil {
		svc.log.Warn("settings: load failed", err)
		svc.notify.Error(core.RemoteMessage(err, "could not load settings"))
		vs.Values = make(Bag)
		return vs
	}
	vs.Values = newBag(items)
	return vs
}

// Save posts one category's form as a flat bulk batch and, on
// success, reloads the entire bag rather than just the saved slice so
// server-side defaults and derivations are always reflected.
func (svc *Service) Save(ctx context.Context, category string, values map[string]string) (ViewState, error) {
	batch := make([]Setting, 0, len(values))
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		batch = append(batch, Setting{Key: k, Value: values[k], Category: category})
	}

	if err := svc.gw.SaveSettings(ctx, batch); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not save settings"))
		return ViewState{Values: make(Bag)}, err
	}
	svc.notify.Success("settings saved")
	return svc.Load(ctx), nil
}

// TestEmail is a fire-and-forget maintenance action.
func (svc *Service) TestEmail(ctx context.Context) error {
	if err := svc.gw.TestEmail(ctx); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "test email failed"))
		return err
	}
	svc.notify.Success("test email sent")
	return nil
}

// Backup is a fire-and-forget maintenance action.
func (svc *Service) Backup(ctx context.Context) error {
	if err := svc.gw.Backup(ctx); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "backup failed"))
		return err
	}
	svc.notify.Success("backup started")
	return nil
}
