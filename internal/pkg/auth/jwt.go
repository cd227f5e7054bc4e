package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/pkg/apperrors"
)

// JWTConfig defines JWT verification settings
type JWTConfig struct {
	SecretKey string
	// Audience is checked when non-empty
	Audience string
}

// Claims defines the access token content issued by the identity provider
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates access tokens. It never issues tokens; the identity
// provider does.
type JWTVerifier struct {
	config JWTConfig
	parser *jwt.Parser
}

// NewJWTVerifier creates a new verifier
func NewJWTVerifier(config JWTConfig) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}
	return &JWTVerifier{
		config: config,
		parser: jwt.NewParser(opts...),
	}
}

// Verify parses and validates a token, returning the subject as a user id.
func (v *JWTVerifier) Verify(tokenString string) (uuid.UUID, *Claims, error) {
	if tokenString == "" {
		return uuid.Nil, nil, apperrors.ErrTokenInvalid
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(v.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, nil, apperrors.ErrTokenExpired
		}
		return uuid.Nil, nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: subject is not a user id", apperrors.ErrTokenInvalid)
	}

	return userID, claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", apperrors.ErrTokenInvalid
	}

	return strings.TrimSpace(token), nil
}
