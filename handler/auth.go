package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/middleware"
	"github.com/phvlkn/CookBook/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler interface
type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

// authHandler struct
type authHandler struct {
	authService    service.AuthService
	userController controller.UserController
}

// NewAuthHandler creates and returns a new AuthHandler
func NewAuthHandler(authService service.AuthService, userController controller.UserController) AuthHandler {
	return &authHandler{
		authService:    authService,
		userController: userController,
	}
}

// Register creates a new account.
func (h *authHandler) Register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userController.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login handles user authentication
func (h *authHandler) Login(c *gin.Context) {
	var loginRequest entity.LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), loginRequest.Email, loginRequest.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated user.
func (h *authHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
