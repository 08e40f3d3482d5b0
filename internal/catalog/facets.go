// internal/catalog/facets.go
package catalog

// FacetOption is one selectable value of a filter facet.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Facet is a single filterable product attribute exposed to visitors.
type Facet struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Options []FacetOption `json:"options"`
}

// Facet sets are static: category families share a set, and anything without
// a specific mapping falls back to the basic set. Every key listed here must
// cover every key accepted into a product's filter attributes; products are
// validated against AllKeys at write time.

// New PP bags and new BOPP bags share one facet family.
var ppBoppFacets = []Facet{
	{
		Key:   "quality",
		Label: "Quality",
		Options: []FacetOption{
			{Value: "super-gold", Label: "Super Gold"},
			{Value: "gold", Label: "Gold"},
			{Value: "silver", Label: "Silver"},
			{Value: "janta", Label: "Janta"},
		},
	},
	{
		Key:   "gram",
		Label: "Gram (Weight per bag)",
		Options: []FacetOption{
			{Value: "2", Label: "2 Gram"},
			{Value: "2.5", Label: "2.5 Gram"},
			{Value: "3", Label: "3 Gram"},
			{Value: "3.5", Label: "3.5 Gram"},
			{Value: "4", Label: "4 Gram"},
			{Value: "4.25", Label: "4.25 Gram"},
			{Value: "4.50", Label: "4.50 Gram"},
			{Value: "5", Label: "5 Gram"},
			{Value: "5.25", Label: "5.25 Gram"},
			{Value: "5.50", Label: "5.50 Gram"},
		},
	},
	{
		Key:   "lamination",
		Label: "Lamination Type",
		Options: []FacetOption{
			{Value: "laminated", Label: "Laminated"},
			{Value: "unlaminated", Label: "Unlaminated"},
		},
	},
	{
		Key:   "availability",
		Label: "Availability",
		Options: []FacetOption{
			{Value: "ready-stock", Label: "Ready Stock"},
			{Value: "make-to-order", Label: "Make-to-Order"},
		},
	},
	{
		Key:   "fillerContent",
		Label: "Filler Content %",
		Options: []FacetOption{
			{Value: "5-10", Label: "5% – 10%"},
			{Value: "10-20", Label: "10% – 20%"},
			{Value: "20-30", Label: "20% – 30%"},
			{Value: "30-40", Label: "30% – 40%"},
			{Value: "40-45", Label: "40% – 45%"},
		},
	},
}

// PP granule categories share one facet family.
var granuleFacets = []Facet{
	{
		Key:   "grade",
		Label: "Grade",
		Options: []FacetOption{
			{Value: "rafiya", Label: "Rafiya Grade"},
			{Value: "rp", Label: "RP Grade"},
		},
	},
	{
		Key:   "mfi",
		Label: "Melt Flow Index (MFI)",
		Options: []FacetOption{
			{Value: "2-4", Label: "2–4"},
			{Value: "4-6", Label: "4–6"},
			{Value: "6-8", Label: "6–8"},
			{Value: "8-12", Label: "8–12"},
		},
	},
	{
		Key:   "color",
		Label: "Color",
		Options: []FacetOption{
			{Value: "natural", Label: "Natural"},
			{Value: "milky-white", Label: "Milky White"},
			{Value: "mixed", Label: "Mixed"},
			{Value: "black", Label: "Black"},
		},
	},
	{
		Key:   "moisture",
		Label: "Moisture Level",
		Options: []FacetOption{
			{Value: "low", Label: "Low"},
			{Value: "medium", Label: "Medium"},
			{Value: "high", Label: "High"},
		},
	},
	{
		Key:   "contamination",
		Label: "Contamination Level",
		Options: []FacetOption{
			{Value: "clean", Label: "Clean"},
			{Value: "semi-clean", Label: "Semi Clean"},
			{Value: "industrial-mix", Label: "Industrial Mix"},
		},
	},
	{
		Key:   "application",
		Label: "Application",
		Options: []FacetOption{
			{Value: "raffia-tape", Label: "Raffia Tape"},
			{Value: "injection-molding", Label: "Injection Molding"},
			{Value: "extrusion", Label: "Extrusion"},
			{Value: "general-purpose", Label: "General Purpose"},
		},
	},
}

// Fallback facets for categories without a specific mapping.
var basicFacets = []Facet{
	{
		Key:   "condition",
		Label: "Condition",
		Options: []FacetOption{
			{Value: "new", Label: "New"},
			{Value: "old", Label: "Used"},
			{Value: "rejected", Label: "Rejected"},
		},
	},
	{
		Key:   "size",
		Label: "Size",
		Options: []FacetOption{
			{Value: "small", Label: "Small"},
			{Value: "medium", Label: "Medium"},
			{Value: "large", Label: "Large"},
			{Value: "extra-large", Label: "Extra Large"},
		},
	},
	{
		Key:   "application",
		Label: "Application",
		Options: []FacetOption{
			{Value: "packaging", Label: "Packaging"},
			{Value: "storage", Label: "Storage"},
			{Value: "industrial", Label: "Industrial"},
			{Value: "agriculture", Label: "Agriculture"},
			{Value: "food", Label: "Food Grade"},
		},
	},
	{
		Key:   "material",
		Label: "Material",
		Options: []FacetOption{
			{Value: "pp", Label: "Polypropylene (PP)"},
			{Value: "hdpe", Label: "HDPE"},
			{Value: "jute", Label: "Jute"},
			{Value: "nylon", Label: "Nylon"},
		},
	},
	{
		Key:   "availability",
		Label: "Availability",
		Options: []FacetOption{
			{Value: "ready-stock", Label: "Ready Stock"},
			{Value: "make-to-order", Label: "Make-to-Order"},
		},
	},
}

var facetsBySlug = map[string][]Facet{
	"new-pp-bags":   ppBoppFacets,
	"new-bopp-bags": ppBoppFacets,
	"pp-granules":   granuleFacets,
	"rafiya-grade":  granuleFacets,
	"rp-grade":      granuleFacets,
}

// FacetsFor returns the facet set for a category scope. Lookup precedence:
// subcategory slug, then category slug, then the basic fallback set.
func FacetsFor(categorySlug, subcategorySlug string) []Facet {
	if subcategorySlug != "" {
		if facets, ok := facetsBySlug[subcategorySlug]; ok {
			return facets
		}
	}
	if facets, ok := facetsBySlug[categorySlug]; ok {
		return facets
	}
	return basicFacets
}

// AllKeys returns every facet key addressable anywhere in the table. Product
// writes reject filter attribute keys outside this set.
func AllKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, set := range [][]Facet{ppBoppFacets, granuleFacets, basicFacets} {
		for _, f := range set {
			keys[f.Key] = true
		}
	}
	return keys
}

// ValidKey reports whether key is addressable by the facet table.
func ValidKey(key string) bool {
	return AllKeys()[key]
}
