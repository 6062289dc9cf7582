package service

import (
	"errors"
	"testing"
	"time"

	"github.com/acadrec/acadrec-backend/internal/config"
	"github.com/acadrec/acadrec-backend/internal/model"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:  "unit-test-secret",
		JWTExpiry:  expiry,
		BcryptCost: 4, // MinCost for fast tests
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	hash, err := s.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := s.CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := s.CheckPassword(hash, "correct horse battery stapl"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("altered password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	h1, _ := s.HashPassword("same password twice")
	h2, _ := s.HashPassword("same password twice")
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (fresh salt per call)")
	}
}

func TestCheckPasswordEmptyHash(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	if err := s.CheckPassword("", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty stored hash: got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	token, err := s.GenerateToken(42, "jane.doe@example.com", model.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want \"42\"", claims.Subject)
	}

	p := claims.Principal()
	if p.ID != 42 || p.Role != model.RoleTeacher {
		t.Errorf("Principal() = %+v", p)
	}
}

func TestExpiredToken(t *testing.T) {
	s := NewAuthService(testConfig(-time.Minute))

	token, err := s.GenerateToken(1, "expired@example.com", model.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestTamperedToken(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	token, _ := s.GenerateToken(1, "a@example.com", model.RoleStudent)

	// Flip a character in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	if _, err := s.ValidateToken(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("tampered token: got %v, want ErrTokenInvalid", err)
	}

	if _, err := s.ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("malformed token: got %v, want ErrTokenInvalid", err)
	}
}

func TestTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour, BcryptCost: 4})
	verifier := NewAuthService(testConfig(time.Hour))

	token, _ := issuer.GenerateToken(1, "a@example.com", model.RoleAdmin)
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("foreign-secret token: got %v, want ErrTokenInvalid", err)
	}
}
