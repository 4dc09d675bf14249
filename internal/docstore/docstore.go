// Package docstore provides a collection-scoped document store: typed JSON
// records addressed by id, with denormalized metadata used for filtered
// queries. Two backends exist, PostgreSQL (JSONB tables) and an in-process
// memory store with identical semantics.
//
// The store guarantees last-write-wins per record and nothing across
// collections: a caller updating two collections must tolerate the second
// write failing after the first succeeded. Writers that need to detect
// concurrent modification use UpdateVersioned.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
)

// Store errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrAlreadyExists   = errors.New("record already exists")
	ErrVersionConflict = errors.New("record version conflict")
)

// Known collections. Tables are created for these at startup.
const (
	CollectionStudents       = "students"
	CollectionAdmissions     = "admissions"
	CollectionDocuments      = "documents"
	CollectionLoans          = "loans"
	CollectionCriteria       = "eligibility_criteria"
	CollectionCommunications = "communications"
	CollectionStaff          = "staff"
)

// Collections lists every collection the application persists.
func Collections() []string {
	return []string{
		CollectionStudents,
		CollectionAdmissions,
		CollectionDocuments,
		CollectionLoans,
		CollectionCriteria,
		CollectionCommunications,
		CollectionStaff,
	}
}

// Metadata holds the denormalized fields a record can be filtered on.
type Metadata map[string]interface{}

// Record is a stored document plus its filtering metadata and version.
type Record struct {
	ID       string
	Data     json.RawMessage
	Metadata Metadata
	Version  int64
}

// Decode unmarshals the record payload into out.
func (r *Record) Decode(out interface{}) error {
	return json.Unmarshal(r.Data, out)
}

// Op is a comparison operator applied to a single metadata field.
type Op string

const (
	OpEq  Op = "eq"
	OpNe  Op = "ne"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
)

// Condition is one field constraint: an operator and a comparison value.
type Condition struct {
	Op    Op
	Value interface{}
}

// Filter is a conjunction of field conditions. Each field carries exactly one
// condition; records matching every condition are returned, deduplicated by
// id and ordered by id.
type Filter map[string]Condition

// Eq builds an exact-match condition.
func Eq(value interface{}) Condition { return Condition{Op: OpEq, Value: value} }

// Cmp builds a comparison condition.
func Cmp(op Op, value interface{}) Condition { return Condition{Op: op, Value: value} }

// Store is the document store contract consumed by the repositories.
type Store interface {
	// Put stores a new record. ErrAlreadyExists when the id is taken.
	Put(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error
	// Get fetches a record by id. ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (*Record, error)
	// Query returns records matching the filter. A nil filter matches all.
	// limit <= 0 means no limit.
	Query(ctx context.Context, collection string, filter Filter, limit, offset int) ([]Record, error)
	// Count returns the number of records matching the filter.
	Count(ctx context.Context, collection string, filter Filter) (int, error)
	// Update replaces a record unconditionally (last write wins) and bumps
	// its version. ErrNotFound when absent.
	Update(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error
	// UpdateVersioned replaces a record only when its stored version equals
	// expectedVersion. ErrVersionConflict otherwise.
	UpdateVersioned(ctx context.Context, collection, id string, record interface{}, metadata Metadata, expectedVersion int64) error
	// Delete removes a record, reporting whether it existed.
	Delete(ctx context.Context, collection, id string) (bool, error)
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validIdent reports whether s is safe to splice into SQL as a table or
// metadata field name.
func validIdent(s string) bool {
	return identPattern.MatchString(s)
}
