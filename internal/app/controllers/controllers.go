// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// requireActor returns the signed-in actor or answers 401
func requireActor(ctx *gin.Context) (*services.Actor, bool) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return actor, true
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}
