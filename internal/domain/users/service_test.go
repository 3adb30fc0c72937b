package users

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byUsername map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byUsername: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func TestService_Register_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	u, err := svc.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("expected username alice, got %q", u.Username)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cret" {
		t.Fatalf("expected hashed password, got %q", u.PasswordHash)
	}
	if !u.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt = now")
	}
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), "alice", "one"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "two"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestService_Register_RequiresCredentials(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), "", "pw"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), "alice", "s3cret"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("expected alice, got %q", u.Username)
	}

	// password mala => 401; usuario inexistente => 404
	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "bob", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
