// Package diag is the polymorphic diagnostic sink (component B): it
// receives categorized messages with levels {note, warning, error, fatal},
// maintains error/warning counters and a fatal latch, and forwards
// deliverable diagnostics to a pluggable Consumer.
package diag

import (
	"fmt"

	"github.com/taogeice/cfront/internal/source"
	"go.uber.org/zap"
)

// Diagnostic is one reported message with its source location.
type Diagnostic struct {
	Level    Level
	Location source.Location
	Message  string
}

// String renders the diagnostic per the §6 output format:
// "{file}:{line}:{col}: {level}: {message}" when the location has a
// filename, else "{level}: {message}".
func (d Diagnostic) String() string {
	if d.Location.Filename != "" {
		return fmt.Sprintf("%s: %s: %s", d.Location.String(), d.Level.String(), d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Level.String(), d.Message)
}

// Consumer receives delivered diagnostics. Implementations own whatever
// resource backs them (a stream, a file handle, a buffer) and release it
// on Close.
type Consumer interface {
	Handle(Diagnostic)
	Close() error
}

// Engine is the diagnostic sink. It owns exactly one Consumer and never
// throws; every call is synchronous and side-effect-free beyond counters
// and the consumer.
//
// Suppression only silences delivery to the Consumer — the error/warning
// counters and the fatal latch are updated for every report regardless of
// suppression, and fatal diagnostics are always delivered.
type Engine struct {
	consumer         Consumer
	log              *zap.Logger
	SuppressWarnings bool
	SuppressErrors   bool

	errorCount   int
	warningCount int
	fatal        bool
}

// NewEngine constructs an Engine around consumer. A nil consumer is
// replaced with a no-op sink so Report never panics.
func NewEngine(consumer Consumer) *Engine {
	if consumer == nil {
		consumer = NopConsumer{}
	}
	return &Engine{consumer: consumer, log: zap.NewNop()}
}

// WithLogger attaches a structured developer logger used for ambient
// trace-level reporting (separate from the user-facing diagnostic
// stream). The zero value keeps logging a no-op.
func (e *Engine) WithLogger(log *zap.Logger) *Engine {
	if log != nil {
		e.log = log
	}
	return e
}

// Report records a diagnostic, updates counters and the fatal latch, and
// forwards it to the consumer unless suppressed.
func (e *Engine) Report(level Level, loc source.Location, format string, args ...any) {
	d := Diagnostic{Level: level, Location: loc, Message: fmt.Sprintf(format, args...)}

	switch level {
	case Warning:
		e.warningCount++
	case Error:
		e.errorCount++
	case Fatal:
		e.errorCount++
		e.fatal = true
	}

	e.log.Debug("diagnostic reported",
		zap.String("level", level.String()),
		zap.String("location", loc.String()),
		zap.String("message", d.Message),
	)

	if level == Warning && e.SuppressWarnings {
		return
	}
	if level == Error && e.SuppressErrors {
		return
	}
	e.consumer.Handle(d)
}

// ErrorCount returns the number of error-level diagnostics reported,
// including fatal ones, regardless of suppression.
func (e *Engine) ErrorCount() int { return e.errorCount }

// WarningCount returns the number of warning-level diagnostics reported,
// regardless of suppression.
func (e *Engine) WarningCount() int { return e.warningCount }

// FatalOccurred reports whether any fatal diagnostic has been reported.
func (e *Engine) FatalOccurred() bool { return e.fatal }

// Close releases the underlying consumer's resources.
func (e *Engine) Close() error { return e.consumer.Close() }

// NopConsumer discards every diagnostic. It backs Engines constructed
// with a nil consumer.
type NopConsumer struct{}

// Handle discards d.
func (NopConsumer) Handle(Diagnostic) {}

// Close is a no-op.
func (NopConsumer) Close() error { return nil }
