package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	DecoratorIDKey contextKey = "decorator_id"
	TokenKey       contextKey = "token"
)

// GetDecoratorIDFromContext returns the authenticated decorator set by the
// session middleware. The admission path itself never reads ambient state;
// it always receives the decorator ID as an explicit parameter.
func GetDecoratorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(DecoratorIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetDecoratorContext(ctx context.Context, decoratorID uuid.UUID) context.Context {
	return context.WithValue(ctx, DecoratorIDKey, decoratorID.String())
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
