// internal/services/push_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

var ErrNoActiveDevices = errors.New("no active devices registered")

// PushService broadcasts notifications to registered mobile devices through
// the Expo push API and keeps the send history.
type PushService struct {
	db     *gorm.DB
	cfg    *config.Config
	client *http.Client
}

func NewPushService(db *gorm.DB, cfg *config.Config) *PushService {
	return &PushService{
		db:     db,
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type RegisterTokenRequest struct {
	Token      string                `json:"token" validate:"required"`
	Platform   models.DevicePlatform `json:"platform" validate:"omitempty,oneof=android ios"`
	DeviceName string                `json:"deviceName"`
}

type SendNotificationRequest struct {
	Title string                  `json:"title" validate:"required,max=255"`
	Body  string                  `json:"body" validate:"required"`
	Type  models.NotificationType `json:"type" validate:"omitempty,oneof=offer price_drop new_product general"`
}

type expoMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound"`
}

type expoTicket struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data []expoTicket `json:"data"`
}

// RegisterToken upserts a device token. Re-registering an existing token
// reactivates it and refreshes the device metadata.
func (s *PushService) RegisterToken(req *RegisterTokenRequest) (*models.PushToken, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	platform := req.Platform
	if platform == "" {
		platform = models.PlatformAndroid
	}
	deviceName := req.DeviceName
	if deviceName == "" {
		deviceName = "Unknown"
	}

	var token models.PushToken
	err := s.db.Where("token = ?", req.Token).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		token = models.PushToken{
			Token:      req.Token,
			Platform:   platform,
			DeviceName: deviceName,
			IsActive:   true,
		}
		if err := s.db.Create(&token).Error; err != nil {
			return nil, fmt.Errorf("failed to register push token: %w", err)
		}
		return &token, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"platform":    platform,
		"device_name": deviceName,
		"is_active":   true,
	}
	if err := s.db.Model(&token).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update push token: %w", err)
	}
	return &token, nil
}

// ActiveDeviceCount reports how many devices a broadcast would reach.
func (s *PushService) ActiveDeviceCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.PushToken{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count devices: %w", err)
	}
	return count, nil
}

// ListNotifications pages through the broadcast history, newest first.
func (s *PushService) ListNotifications(p utils.PaginationParams) ([]models.Notification, int64, error) {
	var total int64
	if err := s.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []models.Notification
	query := s.db.Model(&models.Notification{}).Order("sent_at DESC")
	if err := utils.ApplyPagination(query, p).Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, total, nil
}

// Send broadcasts to every active device in provider-sized batches, records
// the outcome, and deactivates tokens the provider reports as unregistered.
func (s *PushService) Send(ctx context.Context, req *SendNotificationRequest) (*models.Notification, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	notifType := req.Type
	if notifType == "" {
		notifType = models.NotificationGeneral
	}

	var tokens []models.PushToken
	if err := s.db.Where("is_active = ?", true).Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch push tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil, ErrNoActiveDevices
	}

	batchSize := s.cfg.Push.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	sent, failed := 0, 0
	var dead []string

	for start := 0; start < len(tokens); start += batchSize {
		end := start + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		recipients := make([]string, len(batch))
		for i, t := range batch {
			recipients[i] = t.Token
		}

		tickets, err := s.deliverBatch(ctx, recipients, req.Title, req.Body, string(notifType))
		if err != nil {
			logrus.WithError(err).Error("push batch delivery failed")
			failed += len(batch)
			continue
		}

		for i, ticket := range tickets {
			if ticket.Status == "ok" {
				sent++
				continue
			}
			failed++
			if ticket.Details.Error == "DeviceNotRegistered" && i < len(recipients) {
				dead = append(dead, recipients[i])
			}
		}
	}

	if len(dead) > 0 {
		if err := s.db.Model(&models.PushToken{}).
			Where("token IN ?", dead).
			Update("is_active", false).Error; err != nil {
			logrus.WithError(err).Error("failed to deactivate dead push tokens")
		}
	}

	notification := &models.Notification{
		Title:       req.Title,
		Body:        req.Body,
		Type:        notifType,
		SentCount:   sent,
		FailedCount: failed,
		SentAt:      time.Now(),
	}
	if err := s.db.Create(notification).Error; err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"sent":        sent,
		"failed":      failed,
		"deactivated": len(dead),
	}).Info("push broadcast completed")

	return notification, nil
}

// deliverBatch posts one batch to Expo and returns the per-recipient tickets
// in recipient order.
func (s *PushService) deliverBatch(ctx context.Context, recipients []string, title, body, notifType string) ([]expoTicket, error) {
	payload, err := json.Marshal(expoMessage{
		To:    recipients,
		Title: title,
		Body:  body,
		Data:  map[string]string{"type": notifType},
		Sound: "default",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode push payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Push.ExpoAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("push provider returned status %d", resp.StatusCode)
	}

	var parsed expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode push response: %w", err)
	}
	return parsed.Data, nil
}
