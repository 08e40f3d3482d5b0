// internal/handlers/product_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseAttributeFilters(t *testing.T) {
	params := url.Values{
		"fa_quality": {"gold"},
		"fa_gram":    {"5"},
		"fa_empty":   {""},
		"category":   {"new-pp-bags"},
		"fa_":        {"odd"},
	}

	attrs := parseAttributeFilters(params)
	assert.Equal(t, map[string]string{
		"quality": "gold",
		"gram":    "5",
	}, attrs)
}

func TestParseAttributeFiltersNoMatches(t *testing.T) {
	assert.Nil(t, parseAttributeFilters(url.Values{"category": {"x"}}))
	assert.Nil(t, parseAttributeFilters(url.Values{}))
}

func TestGetFiltersEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewProductHandler(nil, nil)
	r := gin.New()
	r.GET("/v1/catalog/filters", handler.GetFilters)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/catalog/filters?category=pp-granules", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"key":"grade"`)
	assert.Contains(t, body, `"key":"mfi"`)
	assert.NotContains(t, body, `"key":"quality"`)
}

func TestGetFiltersFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewProductHandler(nil, nil)
	r := gin.New()
	r.GET("/v1/catalog/filters", handler.GetFilters)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/catalog/filters", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"condition"`)
}
