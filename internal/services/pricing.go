// internal/services/pricing.go
package services

import "github.com/boriwala/catalog-backend/internal/models"

// PriceVisibility is the verdict attached to every serialized product. The
// raw price is only present in a payload when the verdict is visible; the
// numeric value never reaches an unauthorized viewer.
type PriceVisibility string

const (
	// PriceVisible: the literal price is included.
	PriceVisible PriceVisibility = "visible"
	// PriceContact: the product itself hides its price (no price set, or
	// showPrice off). Same for every viewer.
	PriceContact PriceVisibility = "contact"
	// PricePendingApproval: viewer is a logged-in buyer awaiting approval.
	PricePendingApproval PriceVisibility = "pending_approval"
	// PriceLoginRequired: anonymous viewer.
	PriceLoginRequired PriceVisibility = "login_required"
)

// Viewer is the per-request principal the pricing gate evaluates. Approved
// and Active are re-read from the store at request time, not taken from the
// token, so revocation and deactivation apply immediately.
type Viewer struct {
	Authenticated bool
	Role          models.UserRole
	Approved      bool
	Active        bool
}

// Staff viewers (admin, editor) always see prices.
func (v Viewer) IsStaff() bool {
	return v.Authenticated && (v.Role == models.RoleAdmin || v.Role == models.RoleEditor)
}

// ResolvePriceVisibility decides whether a product's price is revealed to a
// viewer. The product-level rule wins over any viewer privilege: a product
// without a visible price shows "Contact for Price" to everyone.
func ResolvePriceVisibility(p *models.Product, v Viewer) PriceVisibility {
	if !p.ShowPrice || p.Price == nil {
		return PriceContact
	}
	if v.IsStaff() {
		return PriceVisible
	}
	if v.Authenticated && v.Role == models.RoleBuyer {
		if v.Approved && v.Active {
			return PriceVisible
		}
		return PricePendingApproval
	}
	return PriceLoginRequired
}

// ProductView is the serialized product shape: category references resolved
// to display refs and the price gated per viewer.
type ProductView struct {
	models.Product
	Category        *models.CategoryRef `json:"category"`
	Subcategory     *models.CategoryRef `json:"subcategory"`
	Price           *float64            `json:"price,omitempty"`
	PriceVisibility PriceVisibility     `json:"priceVisibility"`
}

func NewProductView(p *models.Product, v Viewer) ProductView {
	view := ProductView{
		Product:         *p,
		Category:        p.Category.Ref(),
		Subcategory:     p.Subcategory.Ref(),
		PriceVisibility: ResolvePriceVisibility(p, v),
	}
	if view.PriceVisibility == PriceVisible {
		view.Price = p.Price
	}
	return view
}

func NewProductViews(products []models.Product, v Viewer) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i], v))
	}
	return views
}
