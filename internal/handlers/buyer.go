// internal/handlers/buyer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type BuyerHandler struct {
	buyerService *services.BuyerService
}

func NewBuyerHandler(buyerService *services.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

// GET /v1/admin/buyers?status=pending|approved|all
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.buyerService.ListBuyers(c.DefaultQuery("status", "all"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, buyers)
}

// PUT /v1/admin/buyers/:id
func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.BuyerUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	buyer, err := h.buyerService.UpdateBuyer(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, buyer)
}

// DELETE /v1/admin/buyers/:id
func (h *BuyerHandler) DeleteBuyer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.buyerService.DeleteBuyer(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Buyer deleted")
}
