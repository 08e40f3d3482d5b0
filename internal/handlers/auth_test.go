// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/services"
)

// Validation runs before any store access, so rejection paths are exercised
// without a database behind the service.
func authHandlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Environment: "test"}
	cfg.JWT.TokenTTL = 168

	handler := NewAuthHandler(services.NewAuthService(nil, cfg), cfg)

	r := gin.New()
	r.POST("/v1/auth/signup", handler.Signup)
	r.POST("/v1/auth/login", handler.BuyerLogin)
	r.POST("/v1/auth/admin/login", handler.AdminLogin)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupRejectsMalformedBody(t *testing.T) {
	r := authHandlerRouter()

	w := postJSON(r, "/v1/auth/signup", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	r := authHandlerRouter()

	w := postJSON(r, "/v1/auth/signup", `{"name":"Ramesh","email":"r@example.com","password":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password must be at least 6 characters")
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	r := authHandlerRouter()

	w := postJSON(r, "/v1/auth/signup", `{"name":"Ramesh","email":"nope","password":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email format")
}

func TestBuyerLoginRejectsMissingFields(t *testing.T) {
	r := authHandlerRouter()

	w := postJSON(r, "/v1/auth/login", `{"email":"r@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password is required")
}

func TestAdminLoginRejectsMissingEmail(t *testing.T) {
	r := authHandlerRouter()

	w := postJSON(r, "/v1/auth/admin/login", `{"password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}
