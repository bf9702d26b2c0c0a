package core

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyInfo    NotificationLevel = "info"
)

type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier surfaces transient user-visible notices. Failed reads
// degrade silently into defaults; only mutating actions notify.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}
