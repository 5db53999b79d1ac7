package response

import (
	"time"

	"decor-booking/internal/data/entity"
)

type AuthResponse struct {
	DecoratorID string    `json:"decorator_id"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
}

type DecoratorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func DecoratorToResponse(decorator *entity.Decorator) DecoratorResponse {
	return DecoratorResponse{
		ID:        decorator.ID.String(),
		Name:      decorator.Name,
		Email:     decorator.Email,
		IsActive:  decorator.IsActive,
		CreatedAt: decorator.CreatedAt,
	}
}

func AuthToResponse(decorator *entity.Decorator, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		DecoratorID: decorator.ID.String(),
		Name:        decorator.Name,
		Email:       decorator.Email,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
