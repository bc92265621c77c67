package guard

import "errors"

// Sentinel errors for the two failure categories. A [Violation] unwraps to
// one of these, so errors.Is can tell an out-of-bounds value apart from a
// malformed one without inspecting the violation itself.
var (
	ErrBounds = errors.New("value out of bounds")
	ErrShape  = errors.New("value has invalid shape")
)

// Violation is the structured failure produced by the first failing check in
// a chain. It carries the parameter name, the violated constraint, and the
// boundary operands that appear in the rendered message.
type Violation struct {
	Param    string
	Kind     Kind
	Operands []any

	msg string
}

func (v *Violation) Error() string {
	return v.msg
}

// Unwrap returns [ErrBounds] or [ErrShape] depending on the violated
// constraint's class.
func (v *Violation) Unwrap() error {
	if v.Kind.Class() == ClassShape {
		return ErrShape
	}
	return ErrBounds
}
