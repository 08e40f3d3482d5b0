// internal/handlers/category.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	opts := services.CategoryListOptions{
		ParentOnly: c.DefaultQuery("parentOnly", "true") != "false",
		ActiveOnly: c.DefaultQuery("activeOnly", "true") != "false",
	}

	categories, err := h.categoryService.ListCategories(opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /v1/categories/:id accepts an id or slug.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	param := c.Param("id")

	if id, err := uuid.Parse(param); err == nil {
		category, err := h.categoryService.GetCategory(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.SuccessResponse(c, category)
		return
	}

	category, err := h.categoryService.GetCategoryBySlug(param)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

// POST /v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSlug) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

// PUT /v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSlug) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// DELETE /v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Category deleted")
}
