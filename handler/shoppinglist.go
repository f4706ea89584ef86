package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/middleware"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler interface
type ShoppingListHandler interface {
	Create(c *gin.Context)
	ListMine(c *gin.Context)
}

// shoppingListHandler struct
type shoppingListHandler struct {
	shoppingListController controller.ShoppingListController
}

// NewShoppingListHandler creates and returns a new ShoppingListHandler
func NewShoppingListHandler(shoppingListController controller.ShoppingListController) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListController: shoppingListController,
	}
}

func (h *shoppingListHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req entity.ShoppingListCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.shoppingListController.CreateShoppingList(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shopping_list": list})
}

func (h *shoppingListHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	lists, err := h.shoppingListController.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shopping_lists": lists})
}
