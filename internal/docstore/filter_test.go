package docstore

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSelect() squirrel.SelectBuilder {
	return squirrel.Select("id", "data", "metadata", "version").
		From("admissions").
		PlaceholderFormat(squirrel.Dollar)
}

func TestApplyFilterCompilesDeterministicSQL(t *testing.T) {
	builder, err := applyFilter(baseSelect(), Filter{
		"status":  Eq("pending"),
		"program": Eq("CS"),
	})
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)

	// Fields are visited in sorted order, program before status.
	assert.Contains(t, sql, "metadata->>'program' = $1")
	assert.Contains(t, sql, "metadata->>'status' = $2")
	assert.Equal(t, []interface{}{"CS", "pending"}, args)
}

func TestApplyFilterNumericCast(t *testing.T) {
	builder, err := applyFilter(baseSelect(), Filter{
		"gpa": Cmp(OpGte, 3.0),
	})
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "(metadata->>'gpa')::numeric >= $1")
	assert.Equal(t, []interface{}{3.0}, args)
}

func TestApplyFilterOperators(t *testing.T) {
	tests := []struct {
		op       Op
		fragment string
	}{
		{OpEq, "= $1"},
		{OpNe, "<> $1"},
		{OpGt, "> $1"},
		{OpGte, ">= $1"},
		{OpLt, "< $1"},
		{OpLte, "<= $1"},
	}

	for _, tc := range tests {
		t.Run(string(tc.op), func(t *testing.T) {
			builder, err := applyFilter(baseSelect(), Filter{
				"capacity": Cmp(tc.op, 40),
			})
			require.NoError(t, err)

			sql, _, err := builder.ToSql()
			require.NoError(t, err)
			assert.Contains(t, sql, "(metadata->>'capacity')::numeric "+tc.fragment)
		})
	}
}

func TestApplyFilterRejectsUnsafeField(t *testing.T) {
	_, err := applyFilter(baseSelect(), Filter{
		"status' OR '1'='1": Eq("x"),
	})
	assert.Error(t, err)
}

func TestApplyFilterRejectsUnknownOperator(t *testing.T) {
	_, err := applyFilter(baseSelect(), Filter{
		"status": Cmp(Op("like"), "x"),
	})
	assert.Error(t, err)
}

func TestConditionMatchesInMemory(t *testing.T) {
	metadata := Metadata{"gpa": 3.4, "program": "CS"}

	assert.True(t, Filter{"gpa": Cmp(OpGte, 3.0)}.matches(metadata))
	assert.True(t, Filter{"gpa": Cmp(OpLt, 3.5), "program": Eq("CS")}.matches(metadata))
	assert.False(t, Filter{"gpa": Cmp(OpGt, 3.4)}.matches(metadata))
	assert.False(t, Filter{"program": Eq("Nursing")}.matches(metadata))
	// Missing fields never match.
	assert.False(t, Filter{"status": Eq("pending")}.matches(metadata))
}

func TestConditionMatchesMixedTypes(t *testing.T) {
	metadata := Metadata{"active": true}

	assert.True(t, Filter{"active": Eq(true)}.matches(metadata))
	assert.True(t, Filter{"active": Cmp(OpNe, false)}.matches(metadata))
	// Ordering operators are undefined across non-ordered types.
	assert.False(t, Filter{"active": Cmp(OpGt, false)}.matches(metadata))
}
