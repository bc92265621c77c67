package guard_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Gobd/guard"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericSchema(t *testing.T) {
	schema := guard.Numeric(30, "age").Min(18).Max(130).Schema()
	require.True(t, schema.Type.Is(openapi3.TypeInteger))
	require.NotNil(t, schema.Min)
	require.NotNil(t, schema.Max)
	assert.Equal(t, 18.0, *schema.Min)
	assert.Equal(t, 130.0, *schema.Max)
	assert.False(t, schema.ExclusiveMin)
	assert.False(t, schema.ExclusiveMax)
}

func TestNumericSchemaExclusiveBounds(t *testing.T) {
	schema := guard.Numeric(5.0, "ratio").GreaterThan(0).LessThan(1).Schema()
	require.True(t, schema.Type.Is(openapi3.TypeNumber))
	require.NotNil(t, schema.Min)
	require.NotNil(t, schema.Max)
	assert.Equal(t, 0.0, *schema.Min)
	assert.Equal(t, 1.0, *schema.Max)
	assert.True(t, schema.ExclusiveMin)
	assert.True(t, schema.ExclusiveMax)
}

func TestNumericSchemaSigns(t *testing.T) {
	schema := guard.Numeric(1, "n").Positive().Schema()
	require.NotNil(t, schema.Min)
	assert.Equal(t, 0.0, *schema.Min)
	assert.True(t, schema.ExclusiveMin)

	schema = guard.Numeric(-1, "n").Negative().Schema()
	require.NotNil(t, schema.Max)
	assert.Equal(t, 0.0, *schema.Max)
	assert.True(t, schema.ExclusiveMax)

	schema = guard.Numeric(0, "n").Zero().Schema()
	require.NotNil(t, schema.Min)
	require.NotNil(t, schema.Max)
	assert.Equal(t, 0.0, *schema.Min)
	assert.Equal(t, 0.0, *schema.Max)
}

func TestNumericSchemaInRange(t *testing.T) {
	schema := guard.Numeric(5, "n").InRange(1, 10).Schema()
	assert.Equal(t, 1.0, *schema.Min)
	assert.Equal(t, 10.0, *schema.Max)
}

func TestNumericSchemaIgnoresOutcome(t *testing.T) {
	// The schema reflects declared constraints even when a check failed.
	g := guard.Numeric(0, "n").Min(18)
	require.Error(t, g.Err())
	schema := g.Schema()
	require.NotNil(t, schema.Min)
	assert.Equal(t, 18.0, *schema.Min)
}

func TestStringSchema(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+$`)
	schema := guard.String("abc", "code").NotNullOrEmpty().LengthLessThanOrEqual(12).Matches(re).Schema()
	require.True(t, schema.Type.Is(openapi3.TypeString))
	assert.Equal(t, uint64(1), schema.MinLength)
	require.NotNil(t, schema.MaxLength)
	assert.Equal(t, uint64(12), *schema.MaxLength)
	assert.Equal(t, `^[a-z]+$`, schema.Pattern)
}

func TestStringSchemaStrictLength(t *testing.T) {
	// A strict upper bound renders as maxLength n-1.
	schema := guard.String("abc", "code").LengthLessThan(6).Schema()
	require.NotNil(t, schema.MaxLength)
	assert.Equal(t, uint64(5), *schema.MaxLength)
}

func TestStringSchemaAbsenceChecks(t *testing.T) {
	schema := guard.StringPtr(nil, "s").NullOrEmpty().Schema()
	require.NotNil(t, schema.MaxLength)
	assert.Equal(t, uint64(0), *schema.MaxLength)
}

func TestSchemaValidates(t *testing.T) {
	// Rendered schemas are well-formed OpenAPI.
	schema := guard.Numeric(30, "age").InRange(18, 130).Schema()
	require.NoError(t, schema.Validate(context.Background()))
}
