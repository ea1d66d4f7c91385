package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:category_id", h.updateCategory)
		categories.DELETE("/:category_id", h.deleteCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryEnvelope{
		Message:  "category created successfully",
		Category: dto.ToCategoryResponse(category),
	})
}

// listCategories lists the categories of one account; account_id is a
// required query parameter.
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	accountID := c.Query("account_id")
	if accountID == "" {
		respondError(c, apperrors.NewBadRequestError("account_id query parameter is required"))
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("category_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryEnvelope{
		Message:  "category updated successfully",
		Category: dto.ToCategoryResponse(category),
	})
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("category_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "category deleted successfully"})
}
