package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/middleware"
	"github.com/FACorreiaa/travelmind/internal/app/models"
)

type AuthHandlers struct {
	authService AuthService
	logger      *zap.Logger
}

func NewAuthHandlers(authService AuthService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register. Any provider failure is a 400.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Login handles POST /api/auth/login. Any provider failure is a 401.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me handles GET /api/auth/me behind the auth middleware.
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		h.logger.Error("Me reached without an authenticated user")
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. Sessions are cleared client side.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
