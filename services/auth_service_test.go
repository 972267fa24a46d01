package services

import (
	"errors"
	"testing"

	"github.com/RoadToFit/roadtofit-be/models"
)

func TestRegisterHashesPassword(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.Register("alice", "secret123", "Alice", models.GenderFemale)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Password == "secret123" || user.Password == "" {
		t.Fatalf("plaintext password must not be stored")
	}
	if user.Age != nil || user.Bmi != nil {
		t.Fatalf("fresh user must have null age and bmi")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestAuthService(db)

	first, err := svc.Register("alice", "secret123", "Alice", models.GenderFemale)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err = svc.Register("alice", "other", "Impostor", models.GenderMale)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	// First user untouched.
	var stored models.User
	if err := db.First(&stored, first.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Name != "Alice" || stored.Gender != models.GenderFemale {
		t.Fatalf("first user mutated by failed duplicate registration")
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestAuthService(db)

	registered, err := svc.Register("alice", "secret123", "Alice", models.GenderFemale)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, err := svc.Login("alice", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("user id mismatch: got %d want %d", user.ID, registered.ID)
	}

	claims, err := newTestTokenService().Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.UserID != registered.ID || claims.Username != "alice" {
		t.Fatalf("token claims mismatch: %d/%q", claims.UserID, claims.Username)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestAuthService(db)

	if _, err := svc.Register("alice", "secret123", "Alice", models.GenderFemale); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, _, wrongPass := svc.Login("alice", "wrongpass")
	_, _, unknownUser := svc.Login("nobody", "whatever")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("login failure messages differ: %q vs %q", wrongPass, unknownUser)
	}
}
