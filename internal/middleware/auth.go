// Package middleware contains HTTP middleware for the settlement report API.
// Middleware runs before route handlers and is where cross-cutting concerns live:
// request ids, and the token check that protects the debug routes.
package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	// jwt parses and verifies the HS256 tokens operators present to reach /api/debug.
	"github.com/golang-jwt/jwt/v5"

	"github.com/matchops/settlement-report/internal/config"
)

// Locals keys set by this package.
const (
	LocalStaff   = "staff"
	LocalSubject = "subject"
)

// Claims is the payload of a debug access token.
//
//	{"sub": "ops@example.com", "staff": true, "exp": 1767225600}
type Claims struct {
	jwt.RegisteredClaims
	Staff bool `json:"staff"` // Only staff tokens may inspect raw tables
}

// DebugAuth returns a handler that authenticates callers of the debug routes.
//
// In development every caller is treated as staff so local inspection needs no token.
// Elsewhere the request must carry "Authorization: Bearer <token>" signed HS256 with
// the configured secret key. The verified subject and staff flag are stored in c.Locals
// for RequireStaff.
func DebugAuth(cfg *config.Config) fiber.Handler {
	key := []byte(cfg.SecretKey)

	return func(c *fiber.Ctx) error {
		if cfg.IsDevelopment() {
			c.Locals(LocalStaff, true)
			c.Locals(LocalSubject, "development")
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseToken(key, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(LocalStaff, claims.Staff)
		c.Locals(LocalSubject, claims.Subject)
		return c.Next()
	}
}

// ParseToken verifies tokenStr against key and returns its claims.
// Only HS256 is accepted; tokens must carry an expiry.
func ParseToken(key []byte, tokenStr string) (*Claims, error) {
	if len(key) == 0 {
		return nil, errors.New("secret key is empty")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse debug token: %w", err)
	}
	return claims, nil
}

// IssueToken signs a debug access token for subject that expires after ttl.
func IssueToken(key []byte, subject string, staff bool, ttl time.Duration) (string, error) {
	if len(key) == 0 {
		return "", errors.New("secret key is empty")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Staff: staff,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
