// Package guard provides fluent guard clauses for validating function
// parameters.
//
// Wrap a value in a guard, chain checks, and take the first violation from
// Err:
//
//	func NewAccount(age int, name string) (*Account, error) {
//	    if err := guard.Numeric(age, "age").Min(18).Max(130).Err(); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.String(name, "name").NotNullOrEmpty().LengthLessThan(64).Err(); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// Checks fail fast: the first failing check records a [Violation] and every
// later check in the chain is skipped. Violations carry the parameter name,
// the violated constraint, and its operands, and unwrap to [ErrBounds] or
// [ErrShape] so callers can discriminate with errors.Is.
//
// Guards are immutable snapshots of a value and its diagnostic name; a chain
// never mutates the value it inspects. Failure messages come from a
// [MessageProvider] injected per guard with [WithMessages], defaulting to
// [DefaultMessages].
//
// A chain also documents itself: Schema on either guard renders the applied
// checks as OpenAPI 3 schema constraints for embedding in generated API
// documentation.
package guard
