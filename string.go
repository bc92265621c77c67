package guard

import (
	"regexp"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// StringGuard holds one string value, possibly absent, and its diagnostic
// name. Absence is a nil pointer: length checks treat an absent value as
// unconstrained, while [StringGuard.Matches] always fails it. The asymmetry
// follows the reference behavior this library reproduces.
type StringGuard struct {
	state
	value *string
}

// Value returns the guarded string and whether it is present.
func (g *StringGuard) Value() (string, bool) {
	if g.value == nil {
		return "", false
	}
	return *g.value, true
}

// NotNullOrEmpty checks the value is present and non-empty. A string of
// only whitespace passes; use [StringGuard.NotNullOrWhitespace] to reject it.
func (g *StringGuard) NotNullOrEmpty() *StringGuard {
	g.record(NotNullOrEmpty)
	if g.err != nil {
		return g
	}
	if g.value == nil || validation.Required.Validate(*g.value) != nil {
		g.fail(NotNullOrEmpty)
	}
	return g
}

// NullOrEmpty checks the value is absent or empty.
func (g *StringGuard) NullOrEmpty() *StringGuard {
	g.record(NullOrEmpty)
	if g.err != nil {
		return g
	}
	if g.value != nil && validation.Empty.Validate(*g.value) != nil {
		g.fail(NullOrEmpty)
	}
	return g
}

// NotNullOrWhitespace checks the value is present and contains at least one
// non-whitespace character.
func (g *StringGuard) NotNullOrWhitespace() *StringGuard {
	g.record(NotNullOrWhitespace)
	if g.err != nil {
		return g
	}
	if g.value == nil || *g.value == "" || govalidator.HasWhitespaceOnly(*g.value) {
		g.fail(NotNullOrWhitespace)
	}
	return g
}

// NullOrWhitespace checks the value has no non-whitespace content: absent,
// empty, and whitespace-only values all pass.
func (g *StringGuard) NullOrWhitespace() *StringGuard {
	g.record(NullOrWhitespace)
	if g.err != nil {
		return g
	}
	if g.value != nil && *g.value != "" && !govalidator.HasWhitespaceOnly(*g.value) {
		g.fail(NullOrWhitespace)
	}
	return g
}

// LengthLessThan checks the rune length is strictly less than n. An absent
// value passes.
func (g *StringGuard) LengthLessThan(n int) *StringGuard {
	g.record(LengthLessThan, n)
	if g.err == nil && g.value != nil && utf8.RuneCountInString(*g.value) >= n {
		g.fail(LengthLessThan, n)
	}
	return g
}

// LengthLessThanOrEqual checks the rune length is at most n. An absent
// value passes.
func (g *StringGuard) LengthLessThanOrEqual(n int) *StringGuard {
	g.record(LengthLessThanOrEqual, n)
	if g.err == nil && g.value != nil && utf8.RuneCountInString(*g.value) > n {
		g.fail(LengthLessThanOrEqual, n)
	}
	return g
}

// Matches checks the value is present and matches re, with the unanchored
// semantics of [regexp.Regexp.MatchString]. An absent value always fails:
// a missing value cannot match a pattern.
func (g *StringGuard) Matches(re *regexp.Regexp) *StringGuard {
	g.record(PatternMismatch, re.String())
	if g.err != nil {
		return g
	}
	if g.value == nil || !re.MatchString(*g.value) {
		g.fail(PatternMismatch, re.String())
	}
	return g
}
