package guard

// Kind identifies the constraint a failing check violated.
type Kind int

const (
	AtLeast Kind = iota
	AtMost
	Negative
	Positive
	Zero
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	InRange
	NotNullOrEmpty
	NullOrEmpty
	NotNullOrWhitespace
	NullOrWhitespace
	LengthLessThan
	LengthLessThanOrEqual
	PatternMismatch
)

var kindNames = [...]string{
	AtLeast:               "AtLeast",
	AtMost:                "AtMost",
	Negative:              "Negative",
	Positive:              "Positive",
	Zero:                  "Zero",
	LessThan:              "LessThan",
	LessThanOrEqual:       "LessThanOrEqual",
	GreaterThan:           "GreaterThan",
	GreaterThanOrEqual:    "GreaterThanOrEqual",
	InRange:               "InRange",
	NotNullOrEmpty:        "NotNullOrEmpty",
	NullOrEmpty:           "NullOrEmpty",
	NotNullOrWhitespace:   "NotNullOrWhiteSpace",
	NullOrWhitespace:      "NullOrWhiteSpace",
	LengthLessThan:        "LengthLessThan",
	LengthLessThanOrEqual: "LengthLessThanOrEqual",
	PatternMismatch:       "PatternMismatch",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Class groups constraint kinds into the two failure categories callers can
// discriminate on: values outside accepted bounds, and values that do not
// match a required shape.
type Class int

const (
	ClassBounds Class = iota
	ClassShape
)

// Class returns the failure category for the kind. Presence and pattern
// constraints are shape violations; everything else is a bounds violation.
func (k Kind) Class() Class {
	switch k {
	case NotNullOrEmpty, NullOrEmpty, NotNullOrWhitespace, NullOrWhitespace, PatternMismatch:
		return ClassShape
	}
	return ClassBounds
}
