package auth

import (
	"fmt"
	"time"

	"newsroom-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed lifetime of issued credentials
const TokenTTL = 24 * time.Hour

// Claims represents the identity carried by a signed token
type Claims struct {
	UserID   uuid.UUID       `json:"userId"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	TenantID uuid.UUID       `json:"tenantId"`
	jwt.RegisteredClaims
}

// Actor is the resolved identity performing an operation
type Actor struct {
	ID       uuid.UUID
	Email    string
	Role     models.UserRole
	TenantID uuid.UUID
}

// Service issues and verifies signed bearer credentials
type Service struct {
	secret []byte
}

// NewService creates a new auth service
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT for the user, valid for TokenTTL
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		TenantID: user.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "newsroom-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a JWT token. Any failure (bad
// signature, wrong algorithm, expiry) is returned as a plain error;
// callers turn that into an authentication failure.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Actor converts validated claims to an actor
func (c *Claims) Actor() *Actor {
	return &Actor{
		ID:       c.UserID,
		Email:    c.Email,
		Role:     c.Role,
		TenantID: c.TenantID,
	}
}
