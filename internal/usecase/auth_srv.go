package usecase

import (
	"context"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/data/repository"
	"decor-booking/internal/dto/request"
	"decor-booking/internal/dto/response"
	"decor-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository // grouping decoratorRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	existing, err := s.repo.Decorator.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create decorator entity
	now := time.Now()
	decorator := &entity.Decorator{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := s.repo.Decorator.Create(ctx, decorator); err != nil {
		s.log.Error("Failed to create decorator", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Auto login setelah register
	session, err := s.createSession(ctx, decorator.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("decorator_id", decorator.ID.String()))
		// Continue tanpa session
	}

	s.log.Info("Decorator registered",
		zap.String("decorator_id", decorator.ID.String()),
		zap.String("email", decorator.Email))

	resp := response.AuthToResponse(decorator, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	decorator, err := s.repo.Decorator.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find decorator by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find account")
	}
	if decorator == nil {
		s.log.Warn("Decorator not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, decorator.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("decorator_id", decorator.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !decorator.IsActive {
		s.log.Warn("Inactive decorator tried to login", zap.String("decorator_id", decorator.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	session, err := s.createSession(ctx, decorator.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("decorator_id", decorator.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Decorator logged in",
		zap.String("decorator_id", decorator.ID.String()),
		zap.String("email", decorator.Email))

	resp := response.AuthToResponse(decorator, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("%w: invalid token format", ErrValidation)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("Decorator logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, decoratorID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		DecoratorID: decoratorID,
		Token:       uuid.New(),
		ExpiresAt:   time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
