// Package notify surfaces the storefront's toast messages on the server
// side. The structured log is the delivery channel; API responses carry the
// same message in their body.
package notify

import (
	"log/slog"

	"pharmacy/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier builds the log-backed notifier.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(level service.NotifyLevel, message string) {
	switch level {
	case service.NotifyError:
		n.logger.Warn("toast", slog.String("level", string(level)), slog.String("message", message))
	default:
		n.logger.Info("toast", slog.String("level", string(level)), slog.String("message", message))
	}
}
