package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appauth "github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/models/dto"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/auth"
)

// SessionKey is the gin context key holding the *appauth.Session
const SessionKey = "session"

// TokenVerifier validates access tokens
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, *auth.Claims, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func tokenFromHeader(header string) (string, error) {
	header = strings.Trim(strings.TrimSpace(header), "\"'")
	// raw JWTs are accepted for Swagger UI convenience
	if strings.Count(header, ".") == 2 && !strings.Contains(header, " ") {
		return header, nil
	}
	return auth.ExtractBearerToken(header)
}

// JWTAuth validates the bearer token and stores the resulting session in the
// gin context and the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := tokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			if errors.Is(err, apperrors.ErrTokenInvalid) {
				detail = detail.WithDetails("Invalid token format")
			} else {
				detail = detail.WithDetails("Authorization header missing")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		userID, claims, err := m.verifier.Verify(token)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		session := &appauth.Session{
			Principal:   appauth.Principal{ID: userID, Email: claims.Email},
			AccessToken: token,
		}
		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(appauth.WithSession(c.Request.Context(), session))

		c.Next()
	}
}

// GetSession returns the session set by JWTAuth
func GetSession(c *gin.Context) (*appauth.Session, error) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, apperrors.ErrUnauthorized
	}
	session, ok := value.(*appauth.Session)
	if !ok || session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}
