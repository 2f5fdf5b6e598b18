package mines

import "fmt"

// ConfigurationError is returned when a session is created or restarted
// with parameters that cannot form a playable board.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}
