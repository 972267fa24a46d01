package services

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	token, expiresAt, err := svc.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry window: %v", until)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: got %d/%q", claims.UserID, claims.Username)
	}
}

func TestTokenVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", -1*time.Second)

	token, _, err := svc.Issue(1, "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenVerifyWrongKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	token, _, err := issuer.Issue(7, "carol")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenVerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenVerifyUnsignedRejected(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)

	// alg=none token with a syntactically valid claim set.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJ1c2VySWQiOjEsInVzZXJuYW1lIjoiYWxpY2UifQ."
	if _, err := svc.Verify(unsigned); err == nil {
		t.Fatalf("expected unsigned token to be rejected")
	}
}
