// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GET /v1/settings (public; the storefront renders from it)
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, settings)
}

// PUT /v1/admin/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateSettings(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, settings)
}
