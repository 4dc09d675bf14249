package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimd/admitflow/internal/pkg/logger"
)

// PostgresStore persists collections as JSONB tables. One table per
// collection: id, record payload, filtering metadata, version counter.
type PostgresStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStore creates a PostgresStore on top of an existing pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnsureCollections creates the backing table for each collection if missing.
func (s *PostgresStore) EnsureCollections(ctx context.Context, collections ...string) error {
	for _, collection := range collections {
		if !validIdent(collection) {
			return fmt.Errorf("invalid collection name %q", collection)
		}

		createSQL := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				record JSONB NOT NULL,
				metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
				version BIGINT NOT NULL DEFAULT 1,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);`, collection)

		if _, err := s.db.Exec(ctx, createSQL); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collection, err)
		}

		indexSQL := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_%s_metadata ON %s USING GIN (metadata);`,
			collection, collection)
		if _, err := s.db.Exec(ctx, indexSQL); err != nil {
			return fmt.Errorf("failed to index collection %s: %w", collection, err)
		}
	}

	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func marshalRecord(record interface{}, metadata Metadata) ([]byte, []byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	if metadata == nil {
		metadata = Metadata{}
	}
	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return data, meta, nil
}

// Put stores a new record.
func (s *PostgresStore) Put(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error {
	if !validIdent(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}

	data, meta, err := marshalRecord(record, metadata)
	if err != nil {
		return err
	}

	sql, args, err := s.sb.Insert(collection).
		Columns("id", "record", "metadata").
		Values(id, data, meta).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error inserting record")
		return fmt.Errorf("error inserting record: %w", err)
	}

	return nil
}

// Get fetches a record by id.
func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	if !validIdent(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}

	sql, args, err := s.sb.Select("id", "record", "metadata", "version").
		From(collection).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	rec := &Record{}
	var meta []byte
	err = s.db.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.Data, &meta, &rec.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error scanning record")
		return nil, fmt.Errorf("error getting record: %w", err)
	}

	if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	return rec, nil
}

// Query returns records matching the filter, ordered by id.
func (s *PostgresStore) Query(ctx context.Context, collection string, filter Filter, limit, offset int) ([]Record, error) {
	if !validIdent(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}

	builder := s.sb.Select("id", "record", "metadata", "version").
		From(collection).
		OrderBy("id ASC")

	builder, err := applyFilter(builder, filter)
	if err != nil {
		return nil, err
	}

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Error querying records")
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec := Record{}
		var meta []byte
		if err := rows.Scan(&rec.ID, &rec.Data, &meta, &rec.Version); err != nil {
			return nil, fmt.Errorf("error scanning record row: %w", err)
		}
		if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return records, nil
}

// Count returns the number of records matching the filter.
func (s *PostgresStore) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	if !validIdent(collection) {
		return 0, fmt.Errorf("invalid collection name %q", collection)
	}

	builder := s.sb.Select("COUNT(*)").From(collection)

	builder, err := applyFilter(builder, filter)
	if err != nil {
		return 0, err
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Error counting records")
		return 0, fmt.Errorf("error counting records: %w", err)
	}

	return count, nil
}

// Update replaces a record unconditionally and bumps its version.
func (s *PostgresStore) Update(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error {
	return s.update(ctx, collection, id, record, metadata, nil)
}

// UpdateVersioned replaces a record only when the stored version matches.
func (s *PostgresStore) UpdateVersioned(ctx context.Context, collection, id string, record interface{}, metadata Metadata, expectedVersion int64) error {
	return s.update(ctx, collection, id, record, metadata, &expectedVersion)
}

func (s *PostgresStore) update(ctx context.Context, collection, id string, record interface{}, metadata Metadata, expectedVersion *int64) error {
	if !validIdent(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}

	data, meta, err := marshalRecord(record, metadata)
	if err != nil {
		return err
	}

	builder := s.sb.Update(collection).
		Set("record", data).
		Set("metadata", meta).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if expectedVersion != nil {
		builder = builder.Where(squirrel.Eq{"version": *expectedVersion})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error updating record")
		return fmt.Errorf("error updating record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		if expectedVersion == nil {
			return ErrNotFound
		}
		// Distinguish a concurrent write from a missing record
		if _, getErr := s.Get(ctx, collection, id); getErr != nil {
			return getErr
		}
		return ErrVersionConflict
	}

	return nil
}

// Delete removes a record, reporting whether it existed.
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	if !validIdent(collection) {
		return false, fmt.Errorf("invalid collection name %q", collection)
	}

	sql, args, err := s.sb.Delete(collection).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting record")
		return false, fmt.Errorf("error deleting record: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
