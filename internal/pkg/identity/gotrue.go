package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/pkg/apperrors"
)

// User is the identity provider's view of the current user
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Provider is the identity surface this service consumes
type Provider interface {
	CurrentUser(ctx context.Context, accessToken string) (*User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Config for the hosted auth REST API
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GoTrueClient talks to the hosted auth server
type GoTrueClient struct {
	httpClient *resty.Client
}

// NewGoTrueClient creates a client for the auth server at cfg.BaseURL
func NewGoTrueClient(cfg Config) *GoTrueClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("apikey", cfg.APIKey)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &GoTrueClient{httpClient: client}
}

func statusError(op string, res *resty.Response) error {
	switch res.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, apperrors.ErrTokenInvalid)
	}
	return apperrors.NewRemoteFailure("identity provider unavailable",
		fmt.Errorf("%s: status code: %d, body: %s", op, res.StatusCode(), string(res.Body())))
}

// CurrentUser resolves the user owning accessToken
func (c *GoTrueClient) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, apperrors.NewRemoteFailure("identity provider unavailable", fmt.Errorf("get user: %w", err))
	}
	if res.IsError() {
		return nil, statusError("get user", res)
	}
	if user.ID == uuid.Nil {
		return nil, apperrors.NewRemoteFailure("identity provider unavailable", fmt.Errorf("get user: response has no id"))
	}
	return &user, nil
}

// SignOut revokes the session behind accessToken
func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/auth/v1/logout")
	if err != nil {
		return apperrors.NewRemoteFailure("sign out failed", fmt.Errorf("logout: %w", err))
	}
	if res.IsError() {
		return statusError("logout", res)
	}
	return nil
}
