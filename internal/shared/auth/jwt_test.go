package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s, err := NewSigner("secret", true)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	token, err := s.Sign(Claims{Sub: "google-1", Email: "ops@example.com", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "ops@example.com" || claims.Role != RoleAdmin || claims.Exp == 0 {
		t.Fatalf("unexpected claims %+v", claims)
	}

	other := &Signer{Secret: []byte("other")}
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	s := &Signer{Secret: []byte("secret"), TTL: time.Minute, Now: func() time.Time { return now }}
	token, err := s.Sign(Claims{Sub: "google-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := s.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}
}

func TestNewSignerRequiresSecretInProduction(t *testing.T) {
	if _, err := NewSigner(" ", true); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
	if _, err := NewSigner("", false); err != nil {
		t.Fatalf("expected dev fallback, got %v", err)
	}
}

func TestAdminListCaseInsensitive(t *testing.T) {
	l := NewAdminList([]string{" Ops@Example.com ", ""})
	if !l.Allows("ops@example.COM") || l.Allows("") || l.Allows("x@example.com") {
		t.Fatalf("unexpected allow list behaviour %v", l)
	}
}
