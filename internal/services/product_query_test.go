// internal/services/product_query_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

func seedCategory(t *testing.T, svc *CategoryService, name string) *models.Category {
	t.Helper()
	category, err := svc.CreateCategory(&CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}

func seedProduct(t *testing.T, svc *ProductService, name, category string) *models.Product {
	t.Helper()
	product, err := svc.CreateProduct(&CreateProductRequest{
		Name:        name,
		Description: "Woven polypropylene bag",
		Category:    category,
	})
	require.NoError(t, err)
	return product
}

func firstPage() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: utils.DefaultLimit}
}

func productIDs(products []models.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// A listing filtered by category id and one filtered by the same category's
// slug must resolve to the same rows.
func TestListProductsCategorySlugAndIDEquivalent(t *testing.T) {
	db := openTestDB(t)
	categories := NewCategoryService(db)
	products := NewProductService(db)

	bags := seedCategory(t, categories, "New PP Bags")
	granules := seedCategory(t, categories, "PP Granules")
	seedProduct(t, products, "Gold Bag", bags.ID.String())
	seedProduct(t, products, "Silver Bag", bags.Slug)
	seedProduct(t, products, "Rafiya Granule", granules.ID.String())

	byID, totalID, err := products.ListProducts(ProductQuery{
		PaginationParams: firstPage(),
		Category:         bags.ID.String(),
		ActiveOnly:       true,
	})
	require.NoError(t, err)

	bySlug, totalSlug, err := products.ListProducts(ProductQuery{
		PaginationParams: firstPage(),
		Category:         bags.Slug,
		ActiveOnly:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), totalID)
	assert.Equal(t, totalID, totalSlug)
	assert.Equal(t, productIDs(byID), productIDs(bySlug))

	for _, p := range byID {
		require.NotNil(t, p.Category)
		assert.Equal(t, bags.ID, p.Category.ID)
	}
}

// A category slug that matches nothing drops the constraint instead of
// erroring or returning an empty page.
func TestListProductsUnknownCategorySlugDropsConstraint(t *testing.T) {
	db := openTestDB(t)
	categories := NewCategoryService(db)
	products := NewProductService(db)

	bags := seedCategory(t, categories, "New PP Bags")
	seedProduct(t, products, "Gold Bag", bags.ID.String())
	seedProduct(t, products, "Silver Bag", bags.ID.String())

	all, total, err := products.ListProducts(ProductQuery{
		PaginationParams: firstPage(),
		Category:         "no-such-category",
		ActiveOnly:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestGetProductByIDAndBySlug(t *testing.T) {
	db := openTestDB(t)
	categories := NewCategoryService(db)
	products := NewProductService(db)

	bags := seedCategory(t, categories, "New PP Bags")
	created := seedProduct(t, products, "Gold Bag", bags.ID.String())

	byID, err := products.GetProduct(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	// Slug lookup is case-insensitive.
	bySlug, err := products.GetProduct("GOLD-BAG")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = products.GetProduct("no-such-product")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = products.GetProduct(uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateProductNameGetsSuffixedSlug(t *testing.T) {
	db := openTestDB(t)
	categories := NewCategoryService(db)
	products := NewProductService(db)

	bags := seedCategory(t, categories, "New PP Bags")
	first := seedProduct(t, products, "Gold Bag", bags.ID.String())
	second := seedProduct(t, products, "Gold Bag", bags.ID.String())

	assert.Equal(t, "gold-bag", first.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "gold-bag-"))
	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestGetRelatedProductsExcludesSelf(t *testing.T) {
	db := openTestDB(t)
	categories := NewCategoryService(db)
	products := NewProductService(db)

	bags := seedCategory(t, categories, "New PP Bags")
	granules := seedCategory(t, categories, "PP Granules")
	primary := seedProduct(t, products, "Gold Bag", bags.ID.String())
	sibling := seedProduct(t, products, "Silver Bag", bags.ID.String())
	seedProduct(t, products, "Rafiya Granule", granules.ID.String())

	related, err := products.GetRelatedProducts(primary, 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, sibling.ID, related[0].ID)
}
