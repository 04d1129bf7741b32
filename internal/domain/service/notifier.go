package service

// NotifyLevel classifies a user-facing notification.
type NotifyLevel string

const (
	NotifySuccess NotifyLevel = "success"
	NotifyError   NotifyLevel = "error"
	NotifyInfo    NotifyLevel = "info"
)

// Notifier surfaces short user-facing messages (the toast channel of the
// storefront). Implementations must not block the calling mutation.
type Notifier interface {
	Notify(level NotifyLevel, message string)
}
