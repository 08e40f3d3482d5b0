// internal/catalog/facets_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func facetKeys(facets []Facet) []string {
	keys := make([]string, 0, len(facets))
	for _, f := range facets {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestFacetsForKnownCategories(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		subcategory string
		wantKeys    []string
	}{
		{
			name:     "pp bags get the bag facet family",
			category: "new-pp-bags",
			wantKeys: []string{"quality", "gram", "lamination", "availability", "fillerContent"},
		},
		{
			name:     "bopp bags share the bag facet family",
			category: "new-bopp-bags",
			wantKeys: []string{"quality", "gram", "lamination", "availability", "fillerContent"},
		},
		{
			name:     "granules get the granule facet family",
			category: "pp-granules",
			wantKeys: []string{"grade", "mfi", "color", "moisture", "contamination", "application"},
		},
		{
			name:     "rafiya grade shares the granule family",
			category: "rafiya-grade",
			wantKeys: []string{"grade", "mfi", "color", "moisture", "contamination", "application"},
		},
		{
			name:     "unknown category falls back to basic facets",
			category: "something-else",
			wantKeys: []string{"condition", "size", "application", "material", "availability"},
		},
		{
			name:     "empty scope falls back to basic facets",
			wantKeys: []string{"condition", "size", "application", "material", "availability"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FacetsFor(tt.category, tt.subcategory)
			assert.Equal(t, tt.wantKeys, facetKeys(got))
		})
	}
}

func TestFacetsForSubcategoryWinsOverCategory(t *testing.T) {
	got := FacetsFor("old-bags", "rp-grade")
	assert.Equal(t, facetKeys(granuleFacets), facetKeys(got))
}

func TestFacetsForUnknownSubcategoryFallsThroughToCategory(t *testing.T) {
	got := FacetsFor("new-pp-bags", "no-such-sub")
	assert.Equal(t, facetKeys(ppBoppFacets), facetKeys(got))
}

// Every key any facet set exposes must be addressable, otherwise a product
// write could store attributes no listing filter can ever reach.
func TestAllKeysCoversEveryFacetSet(t *testing.T) {
	keys := AllKeys()
	for _, set := range [][]Facet{ppBoppFacets, granuleFacets, basicFacets} {
		for _, f := range set {
			assert.True(t, keys[f.Key], "missing key %q", f.Key)
		}
	}
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("quality"))
	assert.True(t, ValidKey("mfi"))
	assert.True(t, ValidKey("condition"))
	assert.False(t, ValidKey("nonsense"))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("Quality"))
}

func TestFacetOptionsAreNonEmpty(t *testing.T) {
	for _, set := range [][]Facet{ppBoppFacets, granuleFacets, basicFacets} {
		for _, f := range set {
			assert.NotEmpty(t, f.Options, "facet %q has no options", f.Key)
			assert.NotEmpty(t, f.Label)
		}
	}
}
