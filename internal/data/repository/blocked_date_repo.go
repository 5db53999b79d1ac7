package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BlockedDateRepository owns one-off and annually recurring blocked dates
// per decorator. FindMatching is the engine's read: it takes an optional
// Querier so it can run inside the admission transaction (pass nil for the
// pool).
type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *entity.BlockedDate) error
	Delete(ctx context.Context, id, decoratorID uuid.UUID) error
	ListByDecorator(ctx context.Context, decoratorID uuid.UUID) ([]*entity.BlockedDate, error)
	FindMatching(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (*entity.BlockedDate, error)
}

type blockedDateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlockedDateRepository(db database.PgxIface, log *zap.Logger) BlockedDateRepository {
	return &blockedDateRepository{
		db:  db,
		log: log.With(zap.String("repository", "blocked_date")),
	}
}

func (r *blockedDateRepository) querier(q database.Querier) database.Querier {
	if q == nil {
		return r.db
	}
	return q
}

func (r *blockedDateRepository) Create(ctx context.Context, blocked *entity.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (id, decorator_id, blocked_date, reason, is_recurring, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		blocked.ID,
		blocked.DecoratorID,
		blocked.Date,
		blocked.Reason,
		blocked.IsRecurring,
		blocked.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blocked date",
			zap.Error(err),
			zap.String("decorator_id", blocked.DecoratorID.String()),
			zap.String("date", blocked.Date.Format("2006-01-02")),
		)
		return fmt.Errorf("create blocked date %s: %w", blocked.Date.Format("2006-01-02"), err)
	}

	return nil
}

func (r *blockedDateRepository) Delete(ctx context.Context, id, decoratorID uuid.UUID) error {
	// Scoped to the owning decorator so one decorator cannot remove
	// another's entry.
	query := `DELETE FROM blocked_dates WHERE id = $1 AND decorator_id = $2`

	result, err := r.db.Exec(ctx, query, id, decoratorID)
	if err != nil {
		r.log.Error("Failed to delete blocked date",
			zap.Error(err),
			zap.String("blocked_date_id", id.String()),
		)
		return fmt.Errorf("delete blocked date %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked date %s not found", id.String())
	}

	return nil
}

func (r *blockedDateRepository) ListByDecorator(ctx context.Context, decoratorID uuid.UUID) ([]*entity.BlockedDate, error) {
	query := `
		SELECT id, decorator_id, blocked_date, reason, is_recurring, created_at
		FROM blocked_dates
		WHERE decorator_id = $1
		ORDER BY blocked_date
	`

	rows, err := r.db.Query(ctx, query, decoratorID)
	if err != nil {
		r.log.Error("Failed to list blocked dates",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
		)
		return nil, fmt.Errorf("list blocked dates for %s: %w", decoratorID.String(), err)
	}
	defer rows.Close()

	var blocked []*entity.BlockedDate
	for rows.Next() {
		var b entity.BlockedDate
		err := rows.Scan(
			&b.ID,
			&b.DecoratorID,
			&b.Date,
			&b.Reason,
			&b.IsRecurring,
			&b.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan blocked date row", zap.Error(err))
			return nil, fmt.Errorf("scan blocked date row: %w", err)
		}
		blocked = append(blocked, &b)
	}

	return blocked, nil
}

func (r *blockedDateRepository) FindMatching(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (*entity.BlockedDate, error) {
	// Recurring entries match on month+day regardless of year. The
	// comparison happens on date components, so it stays correct across
	// leap years without any string formatting.
	query := `
		SELECT id, decorator_id, blocked_date, reason, is_recurring, created_at
		FROM blocked_dates
		WHERE decorator_id = $1
		  AND (
			(NOT is_recurring AND blocked_date = $2)
			OR (is_recurring
				AND EXTRACT(MONTH FROM blocked_date) = $3
				AND EXTRACT(DAY FROM blocked_date) = $4)
		  )
		ORDER BY is_recurring
		LIMIT 1
	`

	day := entity.DateOnly(date)

	var b entity.BlockedDate
	err := r.querier(q).QueryRow(ctx, query, decoratorID, day, int(day.Month()), day.Day()).Scan(
		&b.ID,
		&b.DecoratorID,
		&b.Date,
		&b.Reason,
		&b.IsRecurring,
		&b.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find matching blocked date",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
			zap.String("date", day.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("find blocked date for %s on %s: %w",
			decoratorID.String(), day.Format("2006-01-02"), err)
	}

	return &b, nil
}
