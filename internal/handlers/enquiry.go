// internal/handlers/enquiry.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type EnquiryHandler struct {
	enquiryService *services.EnquiryService
}

func NewEnquiryHandler(enquiryService *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// POST /v1/enquiries (public intake)
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var req services.CreateEnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.enquiryService.CreateEnquiry(&req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Enquiry received. We will get back to you shortly.")
}

func (h *EnquiryHandler) enquiryQuery(c *gin.Context) *services.EnquiryQuery {
	q := &services.EnquiryQuery{
		PaginationParams: utils.GetPaginationParams(c, 20),
		Search:           c.Query("search"),
	}

	if raw := c.Query("responded"); raw != "" {
		if responded, err := strconv.ParseBool(raw); err == nil {
			q.Responded = &responded
		}
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse("2006-01-02", raw); err == nil {
			q.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse("2006-01-02", raw); err == nil {
			end := to.Add(24*time.Hour - time.Nanosecond)
			q.To = &end
		}
	}
	return q
}

// GET /v1/admin/enquiries
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	q := h.enquiryQuery(c)

	enquiries, total, err := h.enquiryService.ListEnquiries(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, enquiries, total, q.Page, utils.TotalPages(total, q.Limit))
}

// GET /v1/admin/enquiries/export streams the filtered enquiries as CSV.
func (h *EnquiryHandler) ExportEnquiries(c *gin.Context) {
	csv, err := h.enquiryService.ExportCSV(h.enquiryQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("enquiries-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// PATCH /v1/admin/enquiries/:id
func (h *EnquiryHandler) UpdateEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateEnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	enquiry, err := h.enquiryService.UpdateEnquiry(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, enquiry)
}

// DELETE /v1/admin/enquiries/:id
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.enquiryService.DeleteEnquiry(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Enquiry deleted")
}

// POST /v1/seller-enquiries (public intake)
func (h *EnquiryHandler) CreateSellerEnquiry(c *gin.Context) {
	var req services.CreateSellerEnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.enquiryService.CreateSellerEnquiry(&req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Thank you. Our team will review your material details and contact you.")
}

// GET /v1/admin/seller-enquiries
func (h *EnquiryHandler) ListSellerEnquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c, 20)

	enquiries, total, err := h.enquiryService.ListSellerEnquiries(c.Query("status"), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, enquiries, total, params.Page, utils.TotalPages(total, params.Limit))
}

// PATCH /v1/admin/seller-enquiries/:id
func (h *EnquiryHandler) UpdateSellerEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateSellerEnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	enquiry, err := h.enquiryService.UpdateSellerEnquiry(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, enquiry)
}

// DELETE /v1/admin/seller-enquiries/:id
func (h *EnquiryHandler) DeleteSellerEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.enquiryService.DeleteSellerEnquiry(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Seller enquiry deleted")
}
