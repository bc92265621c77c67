package guard

import "fmt"

// MessageProvider renders the human-readable message for a violation.
// Implementations must be stateless; a provider is shared by every check in
// the chain it was configured on.
type MessageProvider interface {
	Format(kind Kind, param string, operands ...any) string
}

// DefaultMessages is the message provider used when none is configured.
type DefaultMessages struct{}

var defaultFormats = map[Kind]string{
	AtLeast:               "%s must be at least %v.",
	AtMost:                "%s must be at most %v.",
	Negative:              "%s must be negative.",
	Positive:              "%s must be positive.",
	Zero:                  "%s must be zero.",
	LessThan:              "%s must be less than %v.",
	LessThanOrEqual:       "%s must be less than or equal to %v.",
	GreaterThan:           "%s must be greater than %v.",
	GreaterThanOrEqual:    "%s must be greater than or equal to %v.",
	InRange:               "%s must be between %v and %v (inclusive).",
	NotNullOrEmpty:        "%s should not be null or empty.",
	NullOrEmpty:           "%s should be null or empty.",
	NotNullOrWhitespace:   "%s should not be null or whitespace.",
	NullOrWhitespace:      "%s should be null or whitespace.",
	LengthLessThan:        "%s length must be less than %v.",
	LengthLessThanOrEqual: "%s length must be less than or equal to %v.",
	PatternMismatch:       "%s must match the pattern '%v'.",
}

// Format renders the default message for the kind, e.g.
// "age must be at least 18." for AtLeast.
func (DefaultMessages) Format(kind Kind, param string, operands ...any) string {
	f, ok := defaultFormats[kind]
	if !ok {
		return fmt.Sprintf("%s is invalid.", param)
	}
	args := make([]any, 0, len(operands)+1)
	args = append(args, param)
	args = append(args, operands...)
	return fmt.Sprintf(f, args...)
}
