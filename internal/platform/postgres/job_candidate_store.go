package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/store"
)

const jobCandidateColumns = `id, job_id, user_id, status, external_id, resume,
	created_by, updated_by, created_at, updated_at, deleted_at`

// PostgresJobCandidateStore implements store.JobCandidateStore on PostgreSQL.
type PostgresJobCandidateStore struct {
	db     store.DBTX
	inTx   bool
	logger *slog.Logger
}

// NewPostgresJobCandidateStore creates a store on db. If logger is nil, the
// default logger is used.
func NewPostgresJobCandidateStore(db store.DBTX, logger *slog.Logger) *PostgresJobCandidateStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresJobCandidateStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_candidate_store")),
	}
}

var _ store.JobCandidateStore = (*PostgresJobCandidateStore)(nil)

// FindAll implements store.JobCandidateStore.FindAll.
func (s *PostgresJobCandidateStore) FindAll(
	ctx context.Context,
	filter store.JobCandidateFilter,
) ([]*domain.JobCandidate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := jobCandidateWhere(filter)
	query := "SELECT " + jobCandidateColumns + " FROM job_candidates" + where.String()

	rows, err := s.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		log.Error("failed to query job candidates", slog.String("error", err.Error()))
		return nil, store.NewStoreError("job_candidate", "find_all", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var candidates []*domain.JobCandidate
	for rows.Next() {
		c, err := scanJobCandidate(rows)
		if err != nil {
			log.Error("failed to scan job candidate row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("job_candidate", "find_all", "scan failed", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("job_candidate", "find_all", "row iteration failed", MapError(err))
	}

	log.Debug("job candidates found", slog.Int("count", len(candidates)))
	return candidates, nil
}

// GetByID implements store.JobCandidateStore.GetByID.
func (s *PostgresJobCandidateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error) {
	query := "SELECT " + jobCandidateColumns + " FROM job_candidates WHERE id = $1"
	if s.inTx {
		query += " FOR UPDATE"
	}

	c, err := scanJobCandidate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrJobCandidateNotFound
		}
		return nil, store.NewStoreError("job_candidate", "get", "query failed", MapError(err))
	}
	return c, nil
}

// Update implements store.JobCandidateStore.Update.
func (s *PostgresJobCandidateStore) Update(ctx context.Context, c *domain.JobCandidate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE job_candidates
		SET status = $1, external_id = $2, resume = $3, updated_by = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query,
		string(c.Status),
		c.ExternalID,
		c.Resume,
		c.UpdatedBy,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		log.Error("failed to update job candidate",
			slog.String("error", err.Error()),
			slog.String("job_candidate_id", c.ID.String()))
		return store.NewStoreError("job_candidate", "update", "exec failed",
			errors.Join(store.ErrUpdateFailed, MapError(err)))
	}

	return CheckRowsAffected(result, store.ErrJobCandidateNotFound)
}

// WithTx implements store.JobCandidateStore.WithTx.
func (s *PostgresJobCandidateStore) WithTx(tx *sql.Tx) store.JobCandidateStore {
	return &PostgresJobCandidateStore{
		db:     tx,
		inTx:   true,
		logger: s.logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobCandidate(row rowScanner) (*domain.JobCandidate, error) {
	var (
		c          domain.JobCandidate
		status     string
		externalID sql.NullString
		resume     sql.NullString
		updatedBy  uuid.NullUUID
		updatedAt  sql.NullTime
		deletedAt  sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.JobID, &c.UserID, &status, &externalID, &resume,
		&c.CreatedBy, &updatedBy, &c.CreatedAt, &updatedAt, &deletedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.JobCandidateStatus(status)
	if externalID.Valid {
		c.ExternalID = &externalID.String
	}
	if resume.Valid {
		c.Resume = &resume.String
	}
	if updatedBy.Valid {
		c.UpdatedBy = &updatedBy.UUID
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.Time
	}
	return &c, nil
}
