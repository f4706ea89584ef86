package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"

	"github.com/gin-gonic/gin"
)

// IngredientHandler interface
type IngredientHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// ingredientHandler struct
type ingredientHandler struct {
	ingredientController controller.IngredientController
}

// NewIngredientHandler creates and returns a new IngredientHandler
func NewIngredientHandler(ingredientController controller.IngredientController) IngredientHandler {
	return &ingredientHandler{
		ingredientController: ingredientController,
	}
}

func (h *ingredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientController.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *ingredientHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	ingredient, err := h.ingredientController.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}
