package service

import (
	"context"
	"errors"
	"testing"

	"tasktrack/internal/model"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, "alice@example.com", "hunter2hunter2", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "hunter2hunter2" {
		t.Fatal("password stored in plain text")
	}

	token, got, err := env.auth.Login(ctx, "alice@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login user id = %d, want %d", got.ID, user.ID)
	}

	uid, err := env.auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if uid != user.ID {
		t.Fatalf("token uid = %d, want %d", uid, user.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"bad email", "not-an-email", "longenoughpw"},
		{"short password", "bob@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, tc.email, tc.password, "")
			var vErr *model.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, "dup@example.com", "longenoughpw", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := env.auth.Register(ctx, "dup@example.com", "longenoughpw", "")
	if !errors.Is(err, model.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, "carol@example.com", "longenoughpw", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password look identical to the caller.
	if _, _, err := env.auth.Login(ctx, "nobody@example.com", "longenoughpw"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", err)
	}
	if _, _, err := env.auth.Login(ctx, "carol@example.com", "wrongpassword"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, "dave@example.com", "originalpass", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := env.auth.ChangePassword(ctx, user.ID, "wrongcurrent", "replacement1"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("wrong current: got %v", err)
	}
	if err := env.auth.ChangePassword(ctx, user.ID, "originalpass", "replacement1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := env.auth.Login(ctx, "dave@example.com", "originalpass"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("old password still works: %v", err)
	}
	if _, _, err := env.auth.Login(ctx, "dave@example.com", "replacement1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.UpdateProfile(ctx, env.user.ID, env.other.Email, "New Name")
	if !errors.Is(err, model.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}

	updated, err := env.auth.UpdateProfile(ctx, env.user.ID, env.user.Email, "New Name")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.DisplayName != "New Name" {
		t.Fatalf("display name = %q", updated.DisplayName)
	}
}
