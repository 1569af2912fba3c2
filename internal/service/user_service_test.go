package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/sqlite"
)

func newUserService(t *testing.T) UserService {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init user repository: %v", err)
	}
	return NewUserService(repo)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@x.com", "a", "p1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if user.PasswordHash != "" {
		t.Fatal("register must not expose the password hash")
	}
	if !user.IsActive {
		t.Fatal("expected new account to be active")
	}
	if user.IsStaff {
		t.Fatal("expected new account to not be staff")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be stamped")
	}

	got, err := svc.Authenticate(ctx, "a@x.com", "p1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, got.ID)
	}
	if got.PasswordHash != "" {
		t.Fatal("authenticate must not expose the password hash")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "a", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, "a@x.com", "b", "p2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// the first account is untouched
	got, err := svc.Authenticate(ctx, "a@x.com", "p1")
	if err != nil {
		t.Fatalf("authenticate after failed duplicate: %v", err)
	}
	if got.Username != "a" {
		t.Fatalf("expected username a, got %q", got.Username)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	cases := []struct {
		name                      string
		email, username, password string
	}{
		{"missing email", "", "a", "p1"},
		{"missing username", "a@x.com", "", "p1"},
		{"missing password", "a@x.com", "a", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.username, tc.password)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@x.com", "a", "p1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Email != "a@x.com" || !got.IsActive {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.PasswordHash != "" {
		t.Fatal("get by id must not expose the password hash")
	}

	if _, err := svc.GetByID(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthenticateEmailIsCaseInsensitive(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A@X.com", "a", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "a@x.COM", "p1"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "a", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@x.com", "p1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty credentials, got %v", err)
	}
}
