// Package oracle abstracts the long-latency decision service the pipeline
// consults for verification, shortlisting, and counsellor narratives. The
// call is the only suspension point in any pipeline operation: no state is
// written before it returns.
package oracle

import "context"

// Roles the pipeline evaluates under.
const (
	RoleAdmissionOfficer = "admission_officer"
	RoleDocumentChecker  = "document_checker"
	RoleShortlisting     = "shortlisting"
	RoleCounsellor       = "student_counsellor"
)

// Oracle evaluates a structured context under a named role and returns a
// free-text narrative. Failures wrap apperrors.ErrOracleUnavailable; they are
// retryable at the caller's discretion but never retried automatically.
type Oracle interface {
	Evaluate(ctx context.Context, role string, input map[string]interface{}) (string, error)
}
