package jwtutil

import (
	"github.com/golang-jwt/jwt/v5"

	"rvintel-service/pkg/config"
)

var signingKey []byte

// UserClaims represents the JWT claims for an authenticated sales rep
type UserClaims struct {
	Email  string `json:"email"`
	UserID uint   `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Initialize sets the signing key from configuration
func Initialize(cfg *config.JWTConfig) {
	signingKey = []byte(cfg.SigningKey)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
