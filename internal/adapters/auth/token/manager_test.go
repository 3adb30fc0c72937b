package token

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewManager_EmptySecretFailsClosed(t *testing.T) {
	if _, err := NewManager(""); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected ErrSecretMissing, got %v", err)
	}
	if _, err := NewManager("   "); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected ErrSecretMissing for blank secret, got %v", err)
	}
}

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	tok, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.UserID)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	m, err := NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	tok, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// 24h + 1min después: expirado
	m.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }

	if _, err := m.Verify(context.Background(), tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestManager_Verify_Garbage(t *testing.T) {
	m, err := NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	if _, err := m.Verify(context.Background(), "not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	a, _ := NewManager("secret-a")
	b, _ := NewManager("secret-b")

	tok, err := a.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := b.Verify(context.Background(), tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestManager_Issue_EmptyUser(t *testing.T) {
	m, _ := NewManager("test-secret")
	if _, err := m.Issue(""); err == nil {
		t.Fatalf("expected error issuing token without user id")
	}
}
