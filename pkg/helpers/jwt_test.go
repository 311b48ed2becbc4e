package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}

	token, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	uid, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("verify returned wrong user id: %q", uid)
	}
}

func TestJWTExpired(t *testing.T) {
	// A well-signed token whose embedded expiry is already in the past.
	m := &JWTManager{Secret: []byte("test-secret"), TTL: -time.Minute}
	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fresh := &JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	if _, err := fresh.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestJWTBadSignature(t *testing.T) {
	signer := &JWTManager{Secret: []byte("one-secret"), TTL: time.Hour}
	token, _, err := signer.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	verifier := &JWTManager{Secret: []byte("another-secret"), TTL: time.Hour}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("want ErrTokenSignature, got %v", err)
	}
}

func TestJWTMalformed(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
}
