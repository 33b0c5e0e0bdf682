package services

import (
	"testing"
	"time"

	"jobly/internal/domain"
	"jobly/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

func testAuthService() AuthService {
	return AuthService{Secret: []byte("test-secret"), TokenTTL: time.Hour}
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := testAuthService()

	hash, err := svc.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("hash should not equal plaintext")
	}

	if err := svc.CheckPassword(hash, "hunter2"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}

	err = svc.CheckPassword(hash, "wrong")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("wrong password should be unauthorized, got %v", err)
	}
}

func TestCreateTokenCarriesIdentity(t *testing.T) {
	svc := testAuthService()

	signed, err := svc.CreateToken(models.User{Username: "alice", IsAdmin: true})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) { return svc.Secret, nil })
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type")
	}
	if claims["username"] != "alice" {
		t.Fatalf("username claim missing: %v", claims)
	}
	if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
		t.Fatalf("isAdmin claim missing: %v", claims)
	}
}
