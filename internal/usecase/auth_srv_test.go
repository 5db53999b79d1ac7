package usecase

import (
	"context"
	"testing"

	"decor-booking/internal/dto/request"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := NewAuthService(env.repo, testConfig(), testLogger())
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Dewi Decorations",
		Email:    "dewi@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" {
		t.Error("register should auto-login and return a session token")
	}

	// Duplicate email is refused.
	if _, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Imposter",
		Email:    "dewi@example.com",
		Password: "secret123",
	}); err == nil {
		t.Error("expected error registering an existing email")
	}

	login, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "dewi@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" || login.DecoratorID != reg.DecoratorID {
		t.Errorf("unexpected login response: %+v", login)
	}

	if _, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "dewi@example.com",
		Password: "wrongpass",
	}); err == nil {
		t.Error("expected error for wrong password")
	}

	if _, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}); err == nil {
		t.Error("expected error for unknown email")
	}

	if err := svc.Logout(ctx, login.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	// The revoked token no longer resolves to a session.
	session, err := env.repo.Session.FindValidSession(ctx, login.Token)
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if session != nil {
		t.Error("session should be invalid after logout")
	}
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := NewAuthService(env.repo, testConfig(), testLogger())

	if err := svc.Logout(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected error for malformed token")
	}
}
