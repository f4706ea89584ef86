package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/middleware"

	"github.com/gin-gonic/gin"
)

// CollectionHandler interface
type CollectionHandler interface {
	Create(c *gin.Context)
	AddRecipe(c *gin.Context)
	ListMine(c *gin.Context)
	ListPublic(c *gin.Context)
	ListRecipes(c *gin.Context)
}

// collectionHandler struct
type collectionHandler struct {
	collectionController controller.CollectionController
}

// NewCollectionHandler creates and returns a new CollectionHandler
func NewCollectionHandler(collectionController controller.CollectionController) CollectionHandler {
	return &collectionHandler{
		collectionController: collectionController,
	}
}

func (h *collectionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req entity.CollectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.collectionController.CreateCollection(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"collection": collection})
}

func (h *collectionHandler) AddRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	recipeID, ok := uintParam(c, "recipe_id")
	if !ok {
		return
	}

	if err := h.collectionController.AddRecipe(c.Request.Context(), collectionID, recipeID, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe added to collection"})
}

func (h *collectionHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	collections, err := h.collectionController.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h *collectionHandler) ListPublic(c *gin.Context) {
	collections, err := h.collectionController.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h *collectionHandler) ListRecipes(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	recipeIDs, err := h.collectionController.ListRecipes(c.Request.Context(), collectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_ids": recipeIDs})
}
