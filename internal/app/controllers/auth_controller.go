package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// LoginObserver counts login outcomes
type LoginObserver interface {
	ObserveLogin(success bool)
}

// AuthController handles sign-in, sign-out and the session state
type AuthController struct {
	authService    services.AuthService
	sessionService services.SessionService
	observer       LoginObserver
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessionService services.SessionService, observer LoginObserver, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		sessionService: sessionService,
		observer:       observer,
		logger:         logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user by username and password, opens a session on the dashboard view and returns an access token. Every attempt is delayed by a fixed interval.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	session := sessions.Default(ctx)
	sessionID, _ := session.Get(middleware.CookieSessionKey).(string)

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req, sessionID)
	if c.observer != nil {
		c.observer.ObserveLogin(err == nil)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	session.Set(middleware.CookieSessionKey, authResponse.Session.ID)
	if err := session.Save(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to write session cookie")
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      authResponse,
		Timestamp: time.Now(),
	})
}

// Logout handles user logout
// @Summary Log out
// @Description Ends the current session and clears the session cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), actor.SessionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	session := sessions.Default(ctx)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session cookie")
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Logged out"})
}

// GetSession returns the current session state
// @Summary Get session state
// @Description Returns the signed-in user, active view, sidebar state and the navigation table of the role
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /session [get]
func (c *AuthController) GetSession(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	resp, err := c.sessionService.Current(ctx.Request.Context(), actor.SessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Navigate switches the active view
// @Summary Navigate to a view
// @Description Sets the active view. Views the role may not render resolve to the dashboard.
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NavigateRequest true "Target view"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /session/view [put]
func (c *AuthController) Navigate(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.sessionService.Navigate(ctx.Request.Context(), actor.SessionID, req.View)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// SetSidebar collapses, expands or toggles the sidebar
// @Summary Set sidebar state
// @Description Sets the sidebar state; an empty body toggles it
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SidebarRequest false "Sidebar state"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /session/sidebar [put]
func (c *AuthController) SetSidebar(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.SidebarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.sessionService.SetSidebar(ctx.Request.Context(), actor.SessionID, req.Collapsed)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}
