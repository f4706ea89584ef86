package handler

import (
	"net/http"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/middleware"

	"github.com/gin-gonic/gin"
)

// RecipeHandler interface
type RecipeHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
	ListByUser(c *gin.Context)
	CreateReview(c *gin.Context)
	ListReviews(c *gin.Context)
}

// recipeHandler struct
type recipeHandler struct {
	recipeController controller.RecipeController
	reviewController controller.ReviewController
}

// NewRecipeHandler creates and returns a new RecipeHandler
func NewRecipeHandler(recipeController controller.RecipeController, reviewController controller.ReviewController) RecipeHandler {
	return &recipeHandler{
		recipeController: recipeController,
		reviewController: reviewController,
	}
}

func (h *recipeHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req entity.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeController.CreateRecipe(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *recipeHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	recipes, err := h.recipeController.ListRecipes(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *recipeHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	recipe, err := h.recipeController.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *recipeHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.recipeController.DeleteRecipe(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *recipeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	skip, limit := pagination(c)
	recipes, err := h.recipeController.SearchRecipes(c.Request.Context(), query, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *recipeHandler) ListByUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	skip, limit := pagination(c)
	recipes, err := h.recipeController.GetRecipesByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *recipeHandler) CreateReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req entity.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewController.CreateReview(c.Request.Context(), recipeID, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *recipeHandler) ListReviews(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewController.ListReviews(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
