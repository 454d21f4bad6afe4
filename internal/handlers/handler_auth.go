package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/middleware"
	"github.com/contactsapp/contacts-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	r.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	r.POST("/refresh", h.refresh)
	r.POST("/register", h.register)
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.GET("/logout", h.logout)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Username or password is missing"})
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Username or password is missing"})
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid username or password"})
		default:
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// refresh godoc
// @Summary Rotate a refresh token
// @Description Exchanges a refresh token for a new access/refresh token pair. The old refresh token is invalidated.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshToken query string false "Refresh token value"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken := c.Query("refreshToken")
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Refresh token is missing"})
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrExpiredToken):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Expired refresh token"})
		case errors.Is(err, apperrors.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid or expired refresh token"})
		default:
			logger.Error("Refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// logout godoc
// @Summary Log out
// @Description Revokes every refresh token owned by the caller.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /logout [get]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		logger.Error("Logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// register godoc
// @Summary Register a new account
// @Description Creates a new account. The first account ever created gets the Admin role.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.LoginRequest true "Registration credentials"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Username or password is missing"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Username or password is missing"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "User already exists"})
		default:
			logger.Error("Registration failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to register user"})
		}
		return
	}

	logger.Info("User registered", slog.String("new_user_id", user.UserID), slog.String("role", user.Role))
	c.JSON(http.StatusOK, dto.RegisterResponse{Username: user.Username, Role: user.Role})
}
