package guard

// NumericGuard holds one numeric value and its diagnostic name. Every check
// is a pure comparison against that snapshot; the first failure sticks and
// short-circuits the rest of the chain.
type NumericGuard[T Number] struct {
	state
	value T
}

// Value returns the guarded value.
func (g *NumericGuard[T]) Value() T {
	return g.value
}

// Min checks value >= min.
func (g *NumericGuard[T]) Min(min T) *NumericGuard[T] {
	g.record(AtLeast, float64(min))
	if g.err == nil && g.value < min {
		g.fail(AtLeast, min)
	}
	return g
}

// Max checks value <= max.
func (g *NumericGuard[T]) Max(max T) *NumericGuard[T] {
	g.record(AtMost, float64(max))
	if g.err == nil && g.value > max {
		g.fail(AtMost, max)
	}
	return g
}

// Negative checks value < 0. Zero fails.
func (g *NumericGuard[T]) Negative() *NumericGuard[T] {
	var zero T
	g.record(Negative)
	if g.err == nil && g.value >= zero {
		g.fail(Negative)
	}
	return g
}

// Positive checks value > 0. Zero fails.
func (g *NumericGuard[T]) Positive() *NumericGuard[T] {
	var zero T
	g.record(Positive)
	if g.err == nil && g.value <= zero {
		g.fail(Positive)
	}
	return g
}

// Zero checks value == 0.
func (g *NumericGuard[T]) Zero() *NumericGuard[T] {
	var zero T
	g.record(Zero)
	if g.err == nil && g.value != zero {
		g.fail(Zero)
	}
	return g
}

// LessThan checks value < x. Equality fails.
func (g *NumericGuard[T]) LessThan(x T) *NumericGuard[T] {
	g.record(LessThan, float64(x))
	if g.err == nil && g.value >= x {
		g.fail(LessThan, x)
	}
	return g
}

// LessThanOrEqual checks value <= x.
func (g *NumericGuard[T]) LessThanOrEqual(x T) *NumericGuard[T] {
	g.record(LessThanOrEqual, float64(x))
	if g.err == nil && g.value > x {
		g.fail(LessThanOrEqual, x)
	}
	return g
}

// GreaterThan checks value > x. Equality fails.
func (g *NumericGuard[T]) GreaterThan(x T) *NumericGuard[T] {
	g.record(GreaterThan, float64(x))
	if g.err == nil && g.value <= x {
		g.fail(GreaterThan, x)
	}
	return g
}

// GreaterThanOrEqual checks value >= x.
func (g *NumericGuard[T]) GreaterThanOrEqual(x T) *NumericGuard[T] {
	g.record(GreaterThanOrEqual, float64(x))
	if g.err == nil && g.value < x {
		g.fail(GreaterThanOrEqual, x)
	}
	return g
}

// InRange checks lo <= value <= hi, inclusive on both ends.
func (g *NumericGuard[T]) InRange(lo, hi T) *NumericGuard[T] {
	g.record(InRange, float64(lo), float64(hi))
	if g.err == nil && (g.value < lo || g.value > hi) {
		g.fail(InRange, lo, hi)
	}
	return g
}
