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

const resourceBookingColumns = `id, project_id, user_id, job_id, status, start_date, end_date,
	member_rate, customer_rate, rate_type, created_by, updated_by, created_at, updated_at, deleted_at`

// PostgresResourceBookingStore implements store.ResourceBookingStore on PostgreSQL.
type PostgresResourceBookingStore struct {
	db     store.DBTX
	inTx   bool
	logger *slog.Logger
}

// NewPostgresResourceBookingStore creates a store on db. If logger is nil,
// the default logger is used.
func NewPostgresResourceBookingStore(db store.DBTX, logger *slog.Logger) *PostgresResourceBookingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresResourceBookingStore{
		db:     db,
		logger: logger.With(slog.String("component", "resource_booking_store")),
	}
}

var _ store.ResourceBookingStore = (*PostgresResourceBookingStore)(nil)

// FindAll implements store.ResourceBookingStore.FindAll.
func (s *PostgresResourceBookingStore) FindAll(
	ctx context.Context,
	filter store.ResourceBookingFilter,
) ([]*domain.ResourceBooking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := resourceBookingWhere(filter)
	query := "SELECT " + resourceBookingColumns + " FROM resource_bookings" + where.String()

	rows, err := s.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		log.Error("failed to query resource bookings", slog.String("error", err.Error()))
		return nil, store.NewStoreError("resource_booking", "find_all", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var bookings []*domain.ResourceBooking
	for rows.Next() {
		b, err := scanResourceBooking(rows)
		if err != nil {
			log.Error("failed to scan resource booking row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("resource_booking", "find_all", "scan failed", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("resource_booking", "find_all", "row iteration failed", MapError(err))
	}

	log.Debug("resource bookings found", slog.Int("count", len(bookings)))
	return bookings, nil
}

// GetByID implements store.ResourceBookingStore.GetByID.
func (s *PostgresResourceBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error) {
	query := "SELECT " + resourceBookingColumns + " FROM resource_bookings WHERE id = $1"
	if s.inTx {
		query += " FOR UPDATE"
	}

	b, err := scanResourceBooking(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrResourceBookingNotFound
		}
		return nil, store.NewStoreError("resource_booking", "get", "query failed", MapError(err))
	}
	return b, nil
}

// Update implements store.ResourceBookingStore.Update.
func (s *PostgresResourceBookingStore) Update(ctx context.Context, b *domain.ResourceBooking) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE resource_bookings
		SET status = $1, start_date = $2, end_date = $3, member_rate = $4, customer_rate = $5,
			rate_type = $6, updated_by = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query,
		string(b.Status),
		b.StartDate,
		b.EndDate,
		b.MemberRate,
		b.CustomerRate,
		string(b.RateType),
		b.UpdatedBy,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		log.Error("failed to update resource booking",
			slog.String("error", err.Error()),
			slog.String("resource_booking_id", b.ID.String()))
		return store.NewStoreError("resource_booking", "update", "exec failed",
			errors.Join(store.ErrUpdateFailed, MapError(err)))
	}

	return CheckRowsAffected(result, store.ErrResourceBookingNotFound)
}

// WithTx implements store.ResourceBookingStore.WithTx.
func (s *PostgresResourceBookingStore) WithTx(tx *sql.Tx) store.ResourceBookingStore {
	return &PostgresResourceBookingStore{
		db:     tx,
		inTx:   true,
		logger: s.logger,
	}
}

func scanResourceBooking(row rowScanner) (*domain.ResourceBooking, error) {
	var (
		b            domain.ResourceBooking
		status       string
		rateType     string
		jobID        uuid.NullUUID
		startDate    sql.NullTime
		endDate      sql.NullTime
		memberRate   sql.NullFloat64
		customerRate sql.NullFloat64
		updatedBy    uuid.NullUUID
		updatedAt    sql.NullTime
		deletedAt    sql.NullTime
	)
	if err := row.Scan(
		&b.ID, &b.ProjectID, &b.UserID, &jobID, &status, &startDate, &endDate,
		&memberRate, &customerRate, &rateType, &b.CreatedBy, &updatedBy,
		&b.CreatedAt, &updatedAt, &deletedAt,
	); err != nil {
		return nil, err
	}

	b.Status = domain.ResourceBookingStatus(status)
	b.RateType = domain.RateType(rateType)
	if jobID.Valid {
		b.JobID = &jobID.UUID
	}
	if startDate.Valid {
		b.StartDate = &startDate.Time
	}
	if endDate.Valid {
		b.EndDate = &endDate.Time
	}
	if memberRate.Valid {
		b.MemberRate = &memberRate.Float64
	}
	if customerRate.Valid {
		b.CustomerRate = &customerRate.Float64
	}
	if updatedBy.Valid {
		b.UpdatedBy = &updatedBy.UUID
	}
	if updatedAt.Valid {
		b.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		b.DeletedAt = &deletedAt.Time
	}
	return &b, nil
}
