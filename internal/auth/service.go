package auth

import (
	"fmt"
	"time"

	apperrors "espresso-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "espresso-backend"

// AuthService issues and validates the bearer tokens that guard write routes
type AuthService struct {
	secret []byte
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Name string `json:"name,omitempty" example:"release-bot"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.ErrJWTSecretMissing
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// GenerateJWT signs a token for subject that expires after ttl
func (s *AuthService) GenerateJWT(subject, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
