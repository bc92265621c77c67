package guard

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema renders the checks applied so far as OpenAPI schema constraints.
// Later checks overwrite earlier ones when they target the same schema
// field. The schema reflects the declared chain whether or not a check
// failed.
func (g *NumericGuard[T]) Schema() *openapi3.Schema {
	var schema *openapi3.Schema
	switch reflect.ValueOf(g.value).Kind() {
	case reflect.Float32, reflect.Float64:
		schema = openapi3.NewFloat64Schema()
	default:
		schema = openapi3.NewInt64Schema()
	}
	for _, c := range g.trail {
		describeNumeric(schema, c)
	}
	return schema
}

func describeNumeric(schema *openapi3.Schema, c constraint) {
	setMin := func(f float64, exclusive bool) {
		schema.Min = &f
		schema.ExclusiveMin = exclusive
	}
	setMax := func(f float64, exclusive bool) {
		schema.Max = &f
		schema.ExclusiveMax = exclusive
	}

	switch c.kind {
	case AtLeast, GreaterThanOrEqual:
		setMin(c.operands[0].(float64), false)
	case AtMost, LessThanOrEqual:
		setMax(c.operands[0].(float64), false)
	case GreaterThan:
		setMin(c.operands[0].(float64), true)
	case LessThan:
		setMax(c.operands[0].(float64), true)
	case Positive:
		setMin(0, true)
	case Negative:
		setMax(0, true)
	case Zero:
		setMin(0, false)
		setMax(0, false)
	case InRange:
		setMin(c.operands[0].(float64), false)
		setMax(c.operands[1].(float64), false)
	}
}

// Schema renders the checks applied so far as OpenAPI schema constraints.
func (g *StringGuard) Schema() *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	for _, c := range g.trail {
		describeString(schema, c)
	}
	return schema
}

func describeString(schema *openapi3.Schema, c constraint) {
	switch c.kind {
	case NotNullOrEmpty, NotNullOrWhitespace:
		schema.MinLength = 1
	case NullOrEmpty, NullOrWhitespace:
		var zero uint64
		schema.MaxLength = &zero
	case LengthLessThan:
		var m uint64
		if n := c.operands[0].(int); n > 0 {
			m = uint64(n - 1)
		}
		schema.MaxLength = &m
	case LengthLessThanOrEqual:
		var m uint64
		if n := c.operands[0].(int); n > 0 {
			m = uint64(n)
		}
		schema.MaxLength = &m
	case PatternMismatch:
		schema.Pattern = c.operands[0].(string)
	}
}
