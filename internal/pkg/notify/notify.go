package notify

import "github.com/rs/zerolog"

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// Notifier surfaces advisory operation outcomes to the user.
// It carries no business meaning; implementations may drop messages.
type Notifier interface {
	Notify(message string, severity Severity)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(message string, severity Severity) {
	event := n.logger.Info()
	switch severity {
	case SeverityWarning:
		event = n.logger.Warn()
	case SeverityError:
		event = n.logger.Error()
	}
	event.Str("severity", string(severity)).Msg(message)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(string, Severity) {}
