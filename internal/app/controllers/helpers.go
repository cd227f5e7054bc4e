package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/pkg/apperrors"
)

// parseIDParam parses a uuid path parameter
func parseIDParam(ctx *gin.Context, paramName string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(paramName))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid " + paramName)
	}
	return id, nil
}
