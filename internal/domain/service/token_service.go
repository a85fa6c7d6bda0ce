package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the claims of the tokens issued by the fake storefront API.
// The layout follows the simplejwt convention (user_id, token_type, jti).
type TokenClaims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access/refresh token pairs.
type TokenService interface {
	GenerateTokens(userID int64) (accessToken string, refreshToken string, err error)

	// ValidateToken checks signature, expiry and that the token has the expected type.
	ValidateToken(tokenString, tokenType string) (*TokenClaims, error)
}

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
