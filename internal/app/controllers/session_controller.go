package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notehub/notehub/internal/app/models/dto"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/middleware"
)

// SessionController exposes the authenticated session
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// GetSession handles resolving the caller's session
// @Summary Get the current session
// @Description Confirms the access token with the identity provider and returns the caller's identity
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Current session"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Identity provider unavailable"
// @Router /session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.sessionService.Resolve(ctx.Request.Context(), session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SessionResponse{
		UserID:   profile.ID,
		Email:    session.Principal.Email,
		Username: profile.Username,
	}))
}

// Logout handles ending the caller's session
// @Summary Sign out
// @Description Revokes the session at the identity provider
// @Tags session
// @Security BearerAuth
// @Success 204 "Signed out"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Sign out failed"
// @Router /session/logout [post]
func (c *SessionController) Logout(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessionService.SignOut(ctx.Request.Context(), session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
