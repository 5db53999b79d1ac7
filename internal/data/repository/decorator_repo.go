package repository

import (
	"context"
	"errors"
	"fmt"

	"decor-booking/internal/data/entity"
	"decor-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DecoratorRepository interface {
	Create(ctx context.Context, decorator *entity.Decorator) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Decorator, error)
	FindByEmail(ctx context.Context, email string) (*entity.Decorator, error)
}

type decoratorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDecoratorRepository(db database.PgxIface, log *zap.Logger) DecoratorRepository {
	return &decoratorRepository{
		db:  db,
		log: log.With(zap.String("repository", "decorator")),
	}
}

func (r *decoratorRepository) Create(ctx context.Context, decorator *entity.Decorator) error {
	query := `
		INSERT INTO decorators (id, name, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		decorator.ID,
		decorator.Name,
		decorator.Email,
		decorator.PasswordHash,
		decorator.IsActive,
		decorator.CreatedAt,
		decorator.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create decorator",
			zap.Error(err),
			zap.String("email", decorator.Email),
		)
		return fmt.Errorf("create decorator %s: %w", decorator.Email, err)
	}

	return nil
}

func (r *decoratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Decorator, error) {
	query := `
		SELECT id, name, email, password_hash, is_active, created_at, updated_at
		FROM decorators
		WHERE id = $1
	`

	var decorator entity.Decorator
	err := r.db.QueryRow(ctx, query, id).Scan(
		&decorator.ID,
		&decorator.Name,
		&decorator.Email,
		&decorator.PasswordHash,
		&decorator.IsActive,
		&decorator.CreatedAt,
		&decorator.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find decorator by ID",
			zap.Error(err),
			zap.String("decorator_id", id.String()),
		)
		return nil, fmt.Errorf("find decorator by ID %s: %w", id.String(), err)
	}

	return &decorator, nil
}

func (r *decoratorRepository) FindByEmail(ctx context.Context, email string) (*entity.Decorator, error) {
	query := `
		SELECT id, name, email, password_hash, is_active, created_at, updated_at
		FROM decorators
		WHERE email = $1
	`

	var decorator entity.Decorator
	err := r.db.QueryRow(ctx, query, email).Scan(
		&decorator.ID,
		&decorator.Name,
		&decorator.Email,
		&decorator.PasswordHash,
		&decorator.IsActive,
		&decorator.CreatedAt,
		&decorator.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find decorator by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find decorator by email %s: %w", email, err)
	}

	return &decorator, nil
}
