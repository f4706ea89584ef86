package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"

	"github.com/gin-gonic/gin"
)

// UserHandler interface
type UserHandler interface {
	Get(c *gin.Context)
}

// userHandler struct
type userHandler struct {
	userController controller.UserController
}

// NewUserHandler creates and returns a new UserHandler
func NewUserHandler(userController controller.UserController) UserHandler {
	return &userHandler{
		userController: userController,
	}
}

func (h *userHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	user, err := h.userController.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
