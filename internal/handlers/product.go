// internal/handlers/product.go
package handlers

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/catalog"
	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

// attrParamPrefix marks dynamic facet filters in the query string, e.g.
// fa_quality=gold.
const attrParamPrefix = "fa_"

type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
}

func NewProductHandler(productService *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{productService: productService, authService: authService}
}

func (h *ProductHandler) viewer(c *gin.Context) services.Viewer {
	return h.authService.ResolveViewer(c.GetString("user_id"), c.GetString("role"))
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	viewer := h.viewer(c)

	query := services.ProductQuery{
		PaginationParams: utils.GetPaginationParams(c, utils.DefaultLimit),
		Category:         c.Query("category"),
		Subcategory:      c.Query("subcategory"),
		Condition:        c.Query("condition"),
		Search:           c.Query("search"),
		Material:         c.Query("material"),
		ProductType:      c.Query("productType"),
		Featured:         c.Query("featured") == "true",
		Sort:             c.Query("sort"),
		ActiveOnly:       true,
	}

	// Only staff may see inactive products.
	if c.Query("activeOnly") == "false" && viewer.IsStaff() {
		query.ActiveOnly = false
	}

	query.Attributes = parseAttributeFilters(c.Request.URL.Query())

	products, total, err := h.productService.ListProducts(query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := services.NewProductViews(products, viewer)
	totalPages := utils.TotalPages(total, query.Limit)
	utils.PaginatedResponse(c, views, total, query.Page, totalPages)
}

// GET /v1/products/:id accepts a product id or slug.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	view := services.NewProductView(product, h.viewer(c))
	utils.SuccessResponse(c, view)
}

// GET /v1/products/:id/related
func (h *ProductHandler) GetRelatedProducts(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	related, err := h.productService.GetRelatedProducts(product, 4)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, services.NewProductViews(related, h.viewer(c)))
}

// GET /v1/catalog/filters
func (h *ProductHandler) GetFilters(c *gin.Context) {
	facets := catalog.FacetsFor(c.Query("category"), c.Query("subcategory"))
	utils.SuccessResponse(c, facets)
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, services.NewProductView(product, staffViewer()))
}

// PUT /v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, services.NewProductView(product, staffViewer()))
}

// DELETE /v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Product deleted")
}

// staffViewer serializes mutation responses with full price visibility; only
// staff reach those endpoints.
func staffViewer() services.Viewer {
	return services.Viewer{Authenticated: true, Role: models.RoleAdmin}
}

// parseAttributeFilters collects fa_-prefixed query parameters into the
// dynamic facet filter map. Empty values are dropped.
func parseAttributeFilters(params url.Values) map[string]string {
	var attrs map[string]string
	for key, values := range params {
		if !strings.HasPrefix(key, attrParamPrefix) || len(values) == 0 || values[0] == "" {
			continue
		}
		name := strings.TrimPrefix(key, attrParamPrefix)
		if name == "" {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[name] = values[0]
	}
	return attrs
}
