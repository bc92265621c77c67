package guard

// Number is the set of types accepted by [Numeric]. Comparisons use the
// exact semantics of the underlying type; floating-point callers get no
// epsilon tolerance.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DefaultName labels a guard created with an empty name.
const DefaultName = "value"

// Option configures a guard at construction.
type Option func(*state)

// WithMessages replaces the provider used to render failure messages.
// Pluggable formatting is per guard, not process-wide.
func WithMessages(p MessageProvider) Option {
	return func(s *state) {
		if p != nil {
			s.messages = p
		}
	}
}

// constraint is one applied check, kept so Schema can render the chain's
// declared constraints after the fact.
type constraint struct {
	kind     Kind
	operands []any
}

// state is the part of a guard shared by every category: the diagnostic
// name, the message provider, the first violation, and the constraint trail.
// The guarded value itself lives in the category-specific type.
type state struct {
	name     string
	messages MessageProvider
	err      *Violation
	trail    []constraint
}

func newState(name string, opts []Option) state {
	if name == "" {
		name = DefaultName
	}
	s := state{name: name, messages: DefaultMessages{}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Name returns the diagnostic label the guard was created with.
func (s *state) Name() string {
	return s.name
}

// Err terminates the chain, returning the first violation or nil.
func (s *state) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Must panics with the first violation, if any. Intended for constructors
// and configuration phases where an invalid argument is a programmer error.
func (s *state) Must() {
	if s.err != nil {
		panic(s.err)
	}
}

// fail records the chain's first violation. Later checks are skipped.
func (s *state) fail(kind Kind, operands ...any) {
	s.err = &Violation{
		Param:    s.name,
		Kind:     kind,
		Operands: operands,
		msg:      s.messages.Format(kind, s.name, operands...),
	}
}

// record notes an applied constraint for Schema regardless of outcome.
func (s *state) record(kind Kind, operands ...any) {
	s.trail = append(s.trail, constraint{kind: kind, operands: operands})
}

// Numeric wraps a numeric value in a guard exposing ordered-comparison
// checks. Construction never fails and performs no validation. An empty
// name falls back to [DefaultName].
func Numeric[T Number](value T, name string, opts ...Option) *NumericGuard[T] {
	return &NumericGuard[T]{state: newState(name, opts), value: value}
}

// String wraps a present string value in a guard exposing presence, length,
// and pattern checks.
func String(value string, name string, opts ...Option) *StringGuard {
	return &StringGuard{state: newState(name, opts), value: &value}
}

// StringPtr is like [String] but accepts a possibly absent value. A nil
// pointer passes the length checks vacuously and always fails [StringGuard.Matches].
func StringPtr(value *string, name string, opts ...Option) *StringGuard {
	return &StringGuard{state: newState(name, opts), value: value}
}
