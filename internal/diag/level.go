package diag

import "fmt"

// Level is a diagnostic severity level.
type Level uint8

// Level values, in increasing severity order.
const (
	Note Level = iota
	Warning
	Error
	Fatal
)

// String renders the level the way it appears in formatted diagnostics:
// "note", "warning", "error", "fatal error".
func (l Level) String() string {
	switch l {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	default:
		return fmt.Sprintf("level(%d)", l)
	}
}
