// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

var ErrDuplicateSlug = errors.New("a category with this name already exists")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryListOptions struct {
	ParentOnly bool
	ActiveOnly bool
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	Parent      string `json:"parent"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Icon        *string `json:"icon"`
	Parent      *string `json:"parent"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// ListCategories returns categories ordered by display order then name. With
// ParentOnly set, each top-level category carries its subcategories.
func (s *CategoryService) ListCategories(opts CategoryListOptions) ([]models.Category, error) {
	query := s.db.Model(&models.Category{}).Order("display_order ASC, name ASC")
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if opts.ParentOnly {
		query = query.Where("parent_id IS NULL")
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	if !opts.ParentOnly {
		return categories, nil
	}

	subQuery := s.db.Model(&models.Category{}).
		Where("parent_id IS NOT NULL").
		Order("display_order ASC, name ASC")
	if opts.ActiveOnly {
		subQuery = subQuery.Where("is_active = ?", true)
	}

	var subcategories []models.Category
	if err := subQuery.Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch subcategories: %w", err)
	}

	byParent := make(map[uuid.UUID][]models.Category)
	for _, sub := range subcategories {
		byParent[*sub.ParentID] = append(byParent[*sub.ParentID], sub)
	}
	for i := range categories {
		categories[i].Subcategories = byParent[categories[i].ID]
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	slug := utils.MakeSlug(req.Name)
	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateSlug
	}

	parentID, err := s.resolveParent(req.Parent, uuid.Nil)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		Icon:        req.Icon,
		ParentID:    parentID,
		Order:       req.Order,
		IsActive:    isActive,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		slug := utils.MakeSlug(*req.Name)
		var count int64
		if err := s.db.Model(&models.Category{}).
			Where("slug = ? AND id <> ?", slug, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if count > 0 {
			return nil, ErrDuplicateSlug
		}
		updates["name"] = *req.Name
		updates["slug"] = slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Parent != nil {
		parentID, err := s.resolveParent(*req.Parent, id)
		if err != nil {
			return nil, err
		}
		updates["parent_id"] = parentID
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category and, when it is a parent, its child
// categories in the same transaction. Products referencing deleted categories
// keep their reference; it resolves to a null display ref from then on.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Category{}, "parent_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete subcategories: %w", err)
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// resolveParent validates the two-level tree invariant: a parent must exist
// and must itself be top-level.
func (s *CategoryService) resolveParent(parent string, self uuid.UUID) (*uuid.UUID, error) {
	if parent == "" {
		return nil, nil
	}

	parentID, err := uuid.Parse(parent)
	if err != nil {
		return nil, invalidInput("invalid parent category id")
	}
	if parentID == self {
		return nil, invalidInput("category cannot be its own parent")
	}

	var parentCategory models.Category
	if err := s.db.First(&parentCategory, "id = ?", parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidInput("parent category does not exist")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if parentCategory.ParentID != nil {
		return nil, invalidInput("categories only nest one level deep")
	}

	return &parentID, nil
}
