package services

import (
	"time"

	intconfig "jobly/internal/config"
	"jobly/internal/domain"
	"jobly/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns password hashing and token issuance.
type AuthService struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthService() AuthService {
	return AuthService{
		Secret:   intconfig.JWTSecret(),
		TokenTTL: 24 * time.Hour,
	}
}

func (s AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a candidate password. A
// mismatch is an UnauthorizedError so callers never leak which part of the
// credential pair was wrong.
func (s AuthService) CheckPassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return domain.UnauthorizedError{Msg: "invalid username/password"}
	}
	return nil
}

// CreateToken issues an HS256 token carrying the username and admin flag.
func (s AuthService) CreateToken(u models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": u.Username,
		"isAdmin":  u.IsAdmin,
		"exp":      time.Now().Add(s.TokenTTL).Unix(),
	})
	return token.SignedString(s.Secret)
}
