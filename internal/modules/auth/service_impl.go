package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	codeHash []byte
	jwtKey   []byte
}

// NewService creates the gate. codeHash is a bcrypt hash of the access
// code; it lives in the environment, never in the repo.
func NewService(codeHash, jwtKey string) Service {
	return &service{codeHash: []byte(codeHash), jwtKey: []byte(jwtKey)}
}

func (s *service) Unlock(ctx context.Context, accessCode string) (string, error) {
	if len(s.codeHash) == 0 {
		return "", errors.New("access code is not configured")
	}
	if err := bcrypt.CompareHashAndPassword(s.codeHash, []byte(accessCode)); err != nil {
		return "", errors.New("invalid access code")
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   "operator",
		ExpiresAt: expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
