// internal/services/dashboard_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/models"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalProducts    int64            `json:"totalProducts"`
	ActiveProducts   int64            `json:"activeProducts"`
	TotalCategories  int64            `json:"totalCategories"`
	TotalEnquiries   int64            `json:"totalEnquiries"`
	PendingEnquiries int64            `json:"pendingEnquiries"`
	SellerEnquiries  int64            `json:"sellerEnquiries"`
	PendingBuyers    int64            `json:"pendingBuyers"`
	ApprovedBuyers   int64            `json:"approvedBuyers"`
	RecentEnquiries  []models.Enquiry `json:"recentEnquiries"`
}

// GetStats aggregates the admin dashboard counters plus the five most recent
// enquiries.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalProducts, s.db.Model(&models.Product{})},
		{&stats.ActiveProducts, s.db.Model(&models.Product{}).Where("is_active = ?", true)},
		{&stats.TotalCategories, s.db.Model(&models.Category{})},
		{&stats.TotalEnquiries, s.db.Model(&models.Enquiry{})},
		{&stats.PendingEnquiries, s.db.Model(&models.Enquiry{}).Where("is_responded = ?", false)},
		{&stats.SellerEnquiries, s.db.Model(&models.SellerEnquiry{})},
		{&stats.PendingBuyers, s.db.Model(&models.User{}).
			Where("role = ? AND is_approved = ?", models.RoleBuyer, false)},
		{&stats.ApprovedBuyers, s.db.Model(&models.User{}).
			Where("role = ? AND is_approved = ?", models.RoleBuyer, true)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
		}
	}

	err := s.db.Model(&models.Enquiry{}).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentEnquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent enquiries: %w", err)
	}

	return stats, nil
}
