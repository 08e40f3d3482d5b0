// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/catalog"
	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

var ErrNotFound = errors.New("not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductQuery is the normalized filter input for a product listing. Category
// and Subcategory accept either a UUID or a slug; a slug that resolves to
// nothing drops that constraint rather than erroring.
type ProductQuery struct {
	utils.PaginationParams
	Category    string
	Subcategory string
	Condition   string
	Search      string
	Material    string
	ProductType string
	Attributes  map[string]string
	Featured    bool
	ActiveOnly  bool
	Sort        string
}

type CreateProductRequest struct {
	Name             string                   `json:"name" validate:"required,min=2,max=255"`
	Description      string                   `json:"description" validate:"required"`
	ShortDescription string                   `json:"shortDescription"`
	Images           []string                 `json:"images"`
	Video            string                   `json:"video"`
	Category         string                   `json:"category" validate:"required"`
	Subcategory      string                   `json:"subcategory"`
	Condition        models.ProductCondition  `json:"condition" validate:"omitempty,oneof=new old rejected"`
	Price            *float64                 `json:"price"`
	ShowPrice        bool                     `json:"showPrice"`
	Specifications   models.SpecificationList `json:"specifications"`
	FilterAttributes map[string]string        `json:"filterAttributes"`
	MOQ              string                   `json:"moq"`
	Availability     models.Availability      `json:"availability" validate:"omitempty,oneof=in_stock out_of_stock on_demand make_to_order"`
	IsFeatured       bool                     `json:"isFeatured"`
	IsActive         *bool                    `json:"isActive"`
	Tags             []string                 `json:"tags"`
	Material         string                   `json:"material"`
	ProductType      string                   `json:"productType"`
}

type UpdateProductRequest struct {
	Name             *string                   `json:"name" validate:"omitempty,min=2,max=255"`
	Description      *string                   `json:"description"`
	ShortDescription *string                   `json:"shortDescription"`
	Images           []string                  `json:"images"`
	Video            *string                   `json:"video"`
	Category         *string                   `json:"category"`
	Subcategory      *string                   `json:"subcategory"`
	Condition        *models.ProductCondition  `json:"condition" validate:"omitempty,oneof=new old rejected"`
	Price            *float64                  `json:"price"`
	ShowPrice        *bool                     `json:"showPrice"`
	Specifications   *models.SpecificationList `json:"specifications"`
	FilterAttributes map[string]string         `json:"filterAttributes"`
	MOQ              *string                   `json:"moq"`
	Availability     *models.Availability      `json:"availability" validate:"omitempty,oneof=in_stock out_of_stock on_demand make_to_order"`
	IsFeatured       *bool                     `json:"isFeatured"`
	IsActive         *bool                     `json:"isActive"`
	Tags             []string                  `json:"tags"`
	Material         *string                   `json:"material"`
	ProductType      *string                   `json:"productType"`
}

// ListProducts resolves a filter query into a page of products plus the total
// count before pagination. Pure with respect to store contents: identical
// inputs against unchanged data yield identical results.
func (s *ProductService) ListProducts(q ProductQuery) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Preload("Subcategory")

	if q.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if id := s.resolveCategoryID(q.Category); id != nil {
		query = query.Where("category_id = ?", *id)
	}
	if id := s.resolveCategoryID(q.Subcategory); id != nil {
		query = query.Where("subcategory_id = ?", *id)
	}

	if q.Condition != "" {
		query = query.Where("condition = ?", q.Condition)
	}
	if q.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if q.Material != "" {
		query = query.Where("material ILIKE ?", "%"+q.Material+"%")
	}
	if q.ProductType != "" {
		query = query.Where("product_type ILIKE ?", "%"+q.ProductType+"%")
	}

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where(
			s.db.Where("name ILIKE ?", term).
				Or("description ILIKE ?", term).
				Or("array_to_string(tags, ' ') ILIKE ?", term).
				Or("material ILIKE ?", term),
		)
	}

	for key, value := range q.Attributes {
		query = query.Where("filter_attributes->>? = ?", key, value)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(SortClause(q.Sort))
	query = utils.ApplyPagination(query, q.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// SortClause maps a sort key to its ORDER BY clause. Unknown keys get the
// default ordering: featured products first, then newest.
func SortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "name_asc":
		return "name ASC"
	case "name_desc":
		return "name DESC"
	case "price_asc":
		return "price ASC NULLS LAST"
	case "price_desc":
		return "price DESC NULLS LAST"
	default:
		return "is_featured DESC, created_at DESC"
	}
}

// resolveCategoryID turns an id-or-slug value into a category ID. Returns nil
// (constraint dropped) for empty input or a slug that matches nothing.
func (s *ProductService) resolveCategoryID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	if id, err := uuid.Parse(value); err == nil {
		return &id
	}

	var category models.Category
	if err := s.db.Select("id").Where("slug = ?", value).First(&category).Error; err != nil {
		return nil
	}
	return &category.ID
}

// GetProduct looks a product up by id first, then by slug.
func (s *ProductService) GetProduct(idOrSlug string) (*models.Product, error) {
	query := s.db.Preload("Category").Preload("Subcategory")

	var product models.Product
	if id, err := uuid.Parse(idOrSlug); err == nil {
		if err := query.First(&product, "id = ?", id).Error; err == nil {
			return &product, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	if err := query.First(&product, "slug = ?", strings.ToLower(idOrSlug)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// GetRelatedProducts is the dependent second step after a product fetch:
// active products sharing the primary product's category, excluding itself.
func (s *ProductService) GetRelatedProducts(product *models.Product, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 4
	}

	var products []models.Product
	err := s.db.Preload("Category").Preload("Subcategory").
		Where("category_id = ? AND id <> ? AND is_active = ?", product.CategoryID, product.ID, true).
		Order("is_featured DESC, created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch related products: %w", err)
	}
	return products, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	categoryID := s.resolveCategoryID(req.Category)
	if categoryID == nil {
		return nil, invalidInput("category does not exist")
	}
	subcategoryID := s.resolveCategoryID(req.Subcategory)

	if err := validateFilterAttributes(req.FilterAttributes); err != nil {
		return nil, err
	}

	slug, err := s.productSlug(req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	condition := req.Condition
	if condition == "" {
		condition = models.ConditionNew
	}
	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityInStock
	}
	moq := req.MOQ
	if moq == "" {
		moq = "1"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Images:           pqArray(req.Images),
		Video:            req.Video,
		CategoryID:       *categoryID,
		SubcategoryID:    subcategoryID,
		Condition:        condition,
		Price:            req.Price,
		ShowPrice:        req.ShowPrice,
		Specifications:   req.Specifications,
		FilterAttributes: models.AttributeMap(req.FilterAttributes),
		MOQ:              moq,
		Availability:     availability,
		IsFeatured:       req.IsFeatured,
		IsActive:         isActive,
		Tags:             pqArray(req.Tags),
		Material:         req.Material,
		ProductType:      req.ProductType,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.Preload("Category").Preload("Subcategory").First(product, "id = ?", product.ID)
	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.FilterAttributes != nil {
		if err := validateFilterAttributes(req.FilterAttributes); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		slug, err := s.productSlug(*req.Name, id)
		if err != nil {
			return nil, err
		}
		updates["name"] = *req.Name
		updates["slug"] = slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.Images != nil {
		updates["images"] = pqArray(req.Images)
	}
	if req.Video != nil {
		updates["video"] = *req.Video
	}
	if req.Category != nil {
		categoryID := s.resolveCategoryID(*req.Category)
		if categoryID == nil {
			return nil, invalidInput("category does not exist")
		}
		updates["category_id"] = *categoryID
	}
	if req.Subcategory != nil {
		updates["subcategory_id"] = s.resolveCategoryID(*req.Subcategory)
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ShowPrice != nil {
		updates["show_price"] = *req.ShowPrice
	}
	if req.Specifications != nil {
		updates["specifications"] = *req.Specifications
	}
	if req.FilterAttributes != nil {
		updates["filter_attributes"] = models.AttributeMap(req.FilterAttributes)
	}
	if req.MOQ != nil {
		updates["moq"] = *req.MOQ
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Tags != nil {
		updates["tags"] = pqArray(req.Tags)
	}
	if req.Material != nil {
		updates["material"] = *req.Material
	}
	if req.ProductType != nil {
		updates["product_type"] = *req.ProductType
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.Preload("Category").Preload("Subcategory").First(&product, "id = ?", id)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// productSlug derives the slug for a name, suffixing with a timestamp when
// another product (excluding self) already owns the base slug.
func (s *ProductService) productSlug(name string, self uuid.UUID) (string, error) {
	base := utils.MakeSlug(name)

	var count int64
	query := s.db.Model(&models.Product{}).Where("slug = ?", base)
	if self != uuid.Nil {
		query = query.Where("id <> ?", self)
	}
	if err := query.Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}

	if count > 0 {
		return utils.UniqueSlug(base), nil
	}
	return base, nil
}

func pqArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}

// validateFilterAttributes rejects keys the facet table cannot address, so
// facet filtering never silently yields zero matches for unmapped keys.
func validateFilterAttributes(attrs map[string]string) error {
	for key := range attrs {
		if !catalog.ValidKey(key) {
			return invalidInput(fmt.Sprintf("unknown filter attribute key: %s", key))
		}
	}
	return nil
}
