package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/models/dto"
	"github.com/jmcastillo/faculty-locator/internal/app/services"
	"github.com/jmcastillo/faculty-locator/internal/middleware"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

// AuthController handles login, logout, and the entry pages
type AuthController struct {
	authService services.AuthService
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *auth.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Index routes the visitor to the role-selection page when a session exists,
// to the login page otherwise
func (c *AuthController) Index(ctx *gin.Context) {
	token, err := ctx.Cookie(c.sessions.CookieName())
	if err == nil && token != "" {
		if _, err := c.sessions.Validate(token); err == nil {
			ctx.Redirect(http.StatusFound, "/select")
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login view
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewViewResponse(gin.H{"page": "login"}, flash.Pop(ctx)))
}

// Login validates the submitted credentials and establishes a session
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		// Missing fields are reported the same way as bad credentials
		flash.Error(ctx, "Invalid username or password.")
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	user, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	token, err := c.sessions.Issue(user)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	maxAge := int(c.sessions.Expiration().Seconds())
	ctx.SetCookie(c.sessions.CookieName(), token, maxAge, "/", "", false, true)

	c.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")
	ctx.Redirect(http.StatusSeeOther, "/select")
}

// Logout clears the session unconditionally
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.sessions.CookieName(), "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, "/login")
}

// RoleSelect renders the role-selection landing page
func (c *AuthController) RoleSelect(ctx *gin.Context) {
	info := dto.SessionInfo{
		UserID:   ctx.GetInt64(middleware.ContextUserID),
		FullName: ctx.GetString(middleware.ContextFullName),
	}
	if role, ok := ctx.Get(middleware.ContextRole); ok {
		if r, ok := role.(models.RoleType); ok {
			info.Role = string(r)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewViewResponse(info, flash.Pop(ctx)))
}
