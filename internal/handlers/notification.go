// internal/handlers/notification.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type NotificationHandler struct {
	pushService *services.PushService
}

func NewNotificationHandler(pushService *services.PushService) *NotificationHandler {
	return &NotificationHandler{pushService: pushService}
}

// POST /v1/push-tokens (public; the mobile app registers on launch)
func (h *NotificationHandler) RegisterToken(c *gin.Context) {
	var req services.RegisterTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.pushService.RegisterToken(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, token)
}

// GET /v1/admin/notifications/devices
func (h *NotificationHandler) DeviceCount(c *gin.Context) {
	count, err := h.pushService.ActiveDeviceCount()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"activeDevices": count})
}

// GET /v1/admin/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	params := utils.GetPaginationParams(c, 20)

	notifications, total, err := h.pushService.ListNotifications(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, notifications, total, params.Page, utils.TotalPages(total, params.Limit))
}

// POST /v1/admin/notifications broadcasts to every active device.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req services.SendNotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	notification, err := h.pushService.Send(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveDevices) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, notification)
}
