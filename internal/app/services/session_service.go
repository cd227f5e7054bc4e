package services

import (
	"context"
	"errors"

	"github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/identity"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// SessionService resolves and ends sessions with the identity provider
type SessionService interface {
	Resolve(ctx context.Context, session *auth.Session) (*models.UserProfile, error)
	SignOut(ctx context.Context, session *auth.Session) error
}

type sessionServiceImpl struct {
	provider identity.Provider
	profiles repositories.ProfileStore
}

// NewSessionService creates a new SessionService
func NewSessionService(provider identity.Provider, profiles repositories.ProfileStore) SessionService {
	return &sessionServiceImpl{provider: provider, profiles: profiles}
}

// Resolve confirms the session with the identity provider and makes sure the user
// has a profile row. The session's principal is refreshed from the provider.
func (s *sessionServiceImpl) Resolve(ctx context.Context, session *auth.Session) (*models.UserProfile, error) {
	user, err := s.provider.CurrentUser(ctx, session.AccessToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTokenInvalid) {
			logger.Error().Err(err).Msg("Error resolving current user")
		}
		return nil, err
	}
	if user.ID != session.UserID() {
		return nil, apperrors.ErrTokenInvalid
	}
	session.Principal = auth.Principal{ID: user.ID, Email: user.Email}

	profile, err := s.profiles.Ensure(ctx, &models.UserProfile{
		ID:       user.ID,
		Username: session.Principal.Username(),
	})
	if err != nil {
		logger.Error().Err(err).Str("userID", user.ID.String()).Msg("Error ensuring user profile")
		return nil, apperrors.NewRemoteFailure("could not load your profile", err)
	}
	return profile, nil
}

// SignOut ends the session at the identity provider
func (s *sessionServiceImpl) SignOut(ctx context.Context, session *auth.Session) error {
	if err := s.provider.SignOut(ctx, session.AccessToken); err != nil {
		logger.Error().Err(err).Str("userID", session.UserID().String()).Msg("Error signing out")
		return err
	}
	logger.Info().Str("userID", session.UserID().String()).Msg("Signed out")
	return nil
}
