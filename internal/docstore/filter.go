package docstore

import (
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
)

// applyFilter appends one predicate per filter field to the select builder.
// Fields are visited in sorted order so generated SQL is deterministic.
func applyFilter(builder squirrel.SelectBuilder, filter Filter) (squirrel.SelectBuilder, error) {
	if len(filter) == 0 {
		return builder, nil
	}

	fields := make([]string, 0, len(filter))
	for field := range filter {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		pred, err := conditionPredicate(field, filter[field])
		if err != nil {
			return builder, err
		}
		builder = builder.Where(pred)
	}

	return builder, nil
}

// conditionPredicate compiles a single field condition into a squirrel
// predicate over the metadata JSONB column. Numeric comparison values are
// cast so "40" does not sort above "100".
func conditionPredicate(field string, cond Condition) (squirrel.Sqlizer, error) {
	if !validIdent(field) {
		return nil, fmt.Errorf("invalid filter field %q", field)
	}

	numeric := isNumeric(cond.Value)

	var column string
	if numeric {
		column = fmt.Sprintf("(metadata->>'%s')::numeric", field)
	} else {
		column = fmt.Sprintf("metadata->>'%s'", field)
	}

	switch cond.Op {
	case OpEq, "":
		return squirrel.Eq{column: cond.Value}, nil
	case OpNe:
		return squirrel.NotEq{column: cond.Value}, nil
	case OpGt:
		return squirrel.Gt{column: cond.Value}, nil
	case OpGte:
		return squirrel.GtOrEq{column: cond.Value}, nil
	case OpLt:
		return squirrel.Lt{column: cond.Value}, nil
	case OpLte:
		return squirrel.LtOrEq{column: cond.Value}, nil
	default:
		return nil, fmt.Errorf("unsupported filter operator %q", cond.Op)
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// toFloat normalizes any numeric value for in-memory comparison.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// matches evaluates a filter against record metadata in memory, mirroring the
// SQL predicate semantics: conjunction across fields, missing fields never
// match.
func (f Filter) matches(metadata Metadata) bool {
	for field, cond := range f {
		value, ok := metadata[field]
		if !ok {
			return false
		}
		if !cond.matches(value) {
			return false
		}
	}
	return true
}

func (c Condition) matches(value interface{}) bool {
	if lv, lok := toFloat(value); lok {
		if rv, rok := toFloat(c.Value); rok {
			return compareOp(c.Op, compareFloats(lv, rv))
		}
		return false
	}

	ls, lok := value.(string)
	rs, rok := c.Value.(string)
	if lok && rok {
		return compareOp(c.Op, compareStrings(ls, rs))
	}

	// Mixed or non-ordered types only support (in)equality
	switch c.Op {
	case OpEq, "":
		return value == c.Value
	case OpNe:
		return value != c.Value
	default:
		return false
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op Op, cmp int) bool {
	switch op {
	case OpEq, "":
		return cmp == 0
	case OpNe:
		return cmp != 0
	case OpGt:
		return cmp > 0
	case OpGte:
		return cmp >= 0
	case OpLt:
		return cmp < 0
	case OpLte:
		return cmp <= 0
	default:
		return false
	}
}
