// internal/services/buyer_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/models"
)

// BuyerService is the admin side of the buyer approval workflow. A buyer
// moves pending -> approved and back via the isApproved flag; isActive is an
// orthogonal deactivation switch that also blocks login.
type BuyerService struct {
	db *gorm.DB
}

func NewBuyerService(db *gorm.DB) *BuyerService {
	return &BuyerService{db: db}
}

type BuyerUpdateRequest struct {
	IsApproved *bool `json:"isApproved"`
	IsActive   *bool `json:"isActive"`
}

// ListBuyers returns buyer accounts, newest first. Status narrows to
// pending/approved; anything else means all.
func (s *BuyerService) ListBuyers(status string) ([]models.User, error) {
	query := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleBuyer).
		Order("created_at DESC")

	switch status {
	case "pending":
		query = query.Where("is_approved = ?", false)
	case "approved":
		query = query.Where("is_approved = ?", true)
	}

	var buyers []models.User
	if err := query.Find(&buyers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch buyers: %w", err)
	}
	return buyers, nil
}

// UpdateBuyer applies approval/active flag changes as a single-row update.
// Approve, revoke, deactivate and activate are all expressed through it.
func (s *BuyerService) UpdateBuyer(id uuid.UUID, req *BuyerUpdateRequest) (*models.User, error) {
	updates := make(map[string]interface{})
	if req.IsApproved != nil {
		updates["is_approved"] = *req.IsApproved
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, invalidInput("nothing to update")
	}

	var buyer models.User
	err := s.db.Where("id = ? AND role = ?", id, models.RoleBuyer).First(&buyer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&buyer).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update buyer: %w", err)
	}
	return &buyer, nil
}

// DeleteBuyer hard-removes a buyer account.
func (s *BuyerService) DeleteBuyer(id uuid.UUID) error {
	result := s.db.Where("id = ? AND role = ?", id, models.RoleBuyer).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete buyer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
