package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthorized       = errors.New("unauthorized - insufficient role")
)

// Claims represents the JWT claims carried by an editor's bearer token.
// Role is the monotonic level from models (0=none, 1=reader, 2=contributor,
// 3=admin).
type Claims struct {
	PID  string `json:"pid"`
	Name string `json:"name"`
	Role int    `json:"role"`

	jwt.RegisteredClaims
}

// Service mints and validates HS256 tokens
type Service struct {
	secret      []byte
	tokenExpiry time.Duration
}

// NewService creates a new auth service
func NewService(secret string, tokenExpiry time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if tokenExpiry <= 0 {
		tokenExpiry = 24 * time.Hour
	}

	return &Service{
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}, nil
}

// GenerateToken mints a signed token for the given user identity
func (s *Service) GenerateToken(pid, name string, role int) (string, error) {
	now := time.Now()
	claims := Claims{
		PID:  pid,
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   pid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
