package models

import (
	"fmt"
	"strings"

	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// errMissingRequiredFields reports a stored record that lacks fields the
// schema requires. Surfaced as a validation failure instead of panicking on
// first access the way ad hoc key lookups would.
func errMissingRequiredFields(entity string, fields ...string) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("malformed %s record: missing one of required fields [%s]",
			entity, strings.Join(fields, ", ")))
}

// errUnknownEnumValue reports a stored record carrying an enum value outside
// the schema.
func errUnknownEnumValue(entity, field, value string) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("malformed %s record: unknown %s %q", entity, field, value))
}
