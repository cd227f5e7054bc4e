package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Principal is the authenticated user performing an action
type Principal struct {
	ID    uuid.UUID
	Email string
}

// Username derives a display name from the email local part
func (p Principal) Username() string {
	local, _, _ := strings.Cut(p.Email, "@")
	if local == "" {
		return p.ID.String()
	}
	return local
}

// Session is the principal together with the access token it presented. It is
// passed explicitly to every workflow operation.
type Session struct {
	Principal   Principal
	AccessToken string
}

// UserID is a shorthand for the principal id
func (s *Session) UserID() uuid.UUID {
	return s.Principal.ID
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored in ctx, if any
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
