package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"decor-booking/internal/data/entity"
	"decor-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// AvailabilityRuleRepository owns the weekly schedule, spacing interval and
// daily cap per decorator. One active row per decorator; Replace is a full
// overwrite. GetByDecorator takes an optional Querier so the admission path
// can read inside its own transaction; pass nil to read from the pool.
type AvailabilityRuleRepository interface {
	GetByDecorator(ctx context.Context, q database.Querier, decoratorID uuid.UUID) (*entity.AvailabilityRule, error)
	Replace(ctx context.Context, rule *entity.AvailabilityRule) error
	Delete(ctx context.Context, decoratorID uuid.UUID) error
}

type availabilityRuleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRuleRepository(db database.PgxIface, log *zap.Logger) AvailabilityRuleRepository {
	return &availabilityRuleRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability_rule")),
	}
}

func (r *availabilityRuleRepository) querier(q database.Querier) database.Querier {
	if q == nil {
		return r.db
	}
	return q
}

func (r *availabilityRuleRepository) GetByDecorator(ctx context.Context, q database.Querier, decoratorID uuid.UUID) (*entity.AvailabilityRule, error) {
	query := `
		SELECT decorator_id, available_days, time_windows, service_intervals,
		       default_interval_min, max_daily_bookings, updated_at
		FROM availability_rules
		WHERE decorator_id = $1
	`

	var (
		rule          entity.AvailabilityRule
		daysJSON      []byte
		windowsJSON   []byte
		intervalsJSON []byte
	)

	err := r.querier(q).QueryRow(ctx, query, decoratorID).Scan(
		&rule.DecoratorID,
		&daysJSON,
		&windowsJSON,
		&intervalsJSON,
		&rule.DefaultIntervalMin,
		&rule.MaxDailyBookings,
		&rule.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find availability rule",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
		)
		return nil, fmt.Errorf("find availability rule for %s: %w", decoratorID.String(), err)
	}

	if err := json.Unmarshal(daysJSON, &rule.AvailableDays); err != nil {
		return nil, fmt.Errorf("decode available days for %s: %w", decoratorID.String(), err)
	}
	if err := json.Unmarshal(windowsJSON, &rule.TimeWindows); err != nil {
		return nil, fmt.Errorf("decode time windows for %s: %w", decoratorID.String(), err)
	}
	if err := json.Unmarshal(intervalsJSON, &rule.ServiceIntervals); err != nil {
		return nil, fmt.Errorf("decode service intervals for %s: %w", decoratorID.String(), err)
	}

	return &rule, nil
}

func (r *availabilityRuleRepository) Replace(ctx context.Context, rule *entity.AvailabilityRule) error {
	query := `
		INSERT INTO availability_rules
			(decorator_id, available_days, time_windows, service_intervals,
			 default_interval_min, max_daily_bookings, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (decorator_id) DO UPDATE SET
			available_days = EXCLUDED.available_days,
			time_windows = EXCLUDED.time_windows,
			service_intervals = EXCLUDED.service_intervals,
			default_interval_min = EXCLUDED.default_interval_min,
			max_daily_bookings = EXCLUDED.max_daily_bookings,
			updated_at = EXCLUDED.updated_at
	`

	daysJSON, err := json.Marshal(rule.AvailableDays)
	if err != nil {
		return fmt.Errorf("encode available days: %w", err)
	}
	windowsJSON, err := json.Marshal(rule.TimeWindows)
	if err != nil {
		return fmt.Errorf("encode time windows: %w", err)
	}
	intervalsJSON, err := json.Marshal(rule.ServiceIntervals)
	if err != nil {
		return fmt.Errorf("encode service intervals: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		rule.DecoratorID,
		daysJSON,
		windowsJSON,
		intervalsJSON,
		rule.DefaultIntervalMin,
		rule.MaxDailyBookings,
		rule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to replace availability rule",
			zap.Error(err),
			zap.String("decorator_id", rule.DecoratorID.String()),
		)
		return fmt.Errorf("replace availability rule for %s: %w", rule.DecoratorID.String(), err)
	}

	return nil
}

func (r *availabilityRuleRepository) Delete(ctx context.Context, decoratorID uuid.UUID) error {
	query := `DELETE FROM availability_rules WHERE decorator_id = $1`

	result, err := r.db.Exec(ctx, query, decoratorID)
	if err != nil {
		r.log.Error("Failed to delete availability rule",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
		)
		return fmt.Errorf("delete availability rule for %s: %w", decoratorID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("availability rule for %s not found", decoratorID.String())
	}

	return nil
}
