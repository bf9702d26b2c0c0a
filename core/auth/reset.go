package auth

import (
	"context"

	"github.com/jakartamandarin/console/core"
)

// ResetAck is the backend's answer to a forgot-password request. The
// reset token is only present in environments where the backend
// returns it directly instead of mailing it.
type ResetAck struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// ResetGateway is the slice of the backend the reset flow needs.
type ResetGateway interface {
	RequestPasswordReset(ctx context.Context, email string) (ResetAck, error)
	ResetPassword(ctx context.Context, token, password string) error
}

type ResetService struct {
	gw     ResetGateway
	log    core.Logger
	notify core.Notifier
}

func NewResetService(gw ResetGateway, log core.Logger, notify core.Notifier) *ResetService {
	return &ResetService{gw: gw, log: log, notify: notify}
}

type resetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Request asks the backend to start a password reset. The server's own
// message is surfaced verbatim when present, a generic notice
// otherwise.
func (svc *ResetService) Request(ctx context.Context, email string) (ResetAck, error) {
	req := resetRequest{Email: core.CleanString(email)}
	if err := core.TranslateError(core.Validate.Struct(&req)); err != nil {
		return ResetAck{}, err
	}

	ack, err := svc.gw.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not request a password reset"))
		return ResetAck{}, err
	}
	if ack.Message != "" {
		svc.notify.Success(ack.Message)
	} else {
		svc.notify.Success("password reset requested, check your email")
	}
	return ack, nil
}

// Confirm validates the new password client-side and submits it with
// the reset token.
func (svc *ResetService) Confirm(ctx context.Context, token string, np NewPassword) error {
	if err := np.Validate(); err != nil {
		return err
	}
	if err := svc.gw.ResetPassword(ctx, token, np.Password); err != nil {
		svc.notify.Error(core.RemoteMessage(err, "could not reset the password"))
		return err
	}
	svc.notify.Success("password updated, you can sign in now")
	return nil
}
