// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/models"
)

// SettingsService manages the single site settings row. Reads create it with
// company defaults when missing, so the storefront never sees an empty page.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

type UpdateSettingsRequest struct {
	CompanyName    *string       `json:"companyName"`
	Tagline        *string       `json:"tagline"`
	Phone          []string      `json:"phone"`
	Email          []string      `json:"email"`
	Address        *string       `json:"address"`
	WhatsappNumber *string       `json:"whatsappNumber"`
	GoogleMapEmbed *string       `json:"googleMapEmbed"`
	SocialLinks    *models.JSONB `json:"socialLinks"`
	AboutUs        *string       `json:"aboutUs"`
	AboutUsShort   *string       `json:"aboutUsShort"`
	Experience     *string       `json:"experience"`
	Infrastructure *string       `json:"infrastructure"`
	Certifications []string      `json:"certifications"`
	Strengths      []string      `json:"strengths"`
	Logo           *string       `json:"logo"`
	HeroImages     []string      `json:"heroImages"`
	HeroTitle      *string       `json:"heroTitle"`
	HeroSubtitle   *string       `json:"heroSubtitle"`
}

// GetSettings returns the settings row, creating it with defaults on first
// access.
func (s *SettingsService) GetSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	settings = defaultSettings()
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings applies a partial update to the singleton row. Array fields
// replace wholesale when present; nil slices leave the column untouched.
func (s *SettingsService) UpdateSettings(req *UpdateSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setArray := func(column string, value []string) {
		if value != nil {
			updates[column] = pq.StringArray(value)
		}
	}

	setString("company_name", req.CompanyName)
	setString("tagline", req.Tagline)
	setArray("phone", req.Phone)
	setArray("email", req.Email)
	setString("address", req.Address)
	setString("whatsapp_number", req.WhatsappNumber)
	setString("google_map_embed", req.GoogleMapEmbed)
	if req.SocialLinks != nil {
		updates["social_links"] = *req.SocialLinks
	}
	setString("about_us", req.AboutUs)
	setString("about_us_short", req.AboutUsShort)
	setString("experience", req.Experience)
	setString("infrastructure", req.Infrastructure)
	setArray("certifications", req.Certifications)
	setArray("strengths", req.Strengths)
	setString("logo", req.Logo)
	setArray("hero_images", req.HeroImages)
	setString("hero_title", req.HeroTitle)
	setString("hero_subtitle", req.HeroSubtitle)

	if len(updates) == 0 {
		return settings, nil
	}

	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		CompanyName: "Boriwala Trading Co.",
		Tagline:     "Quality PP/BOPP bags and plastic granules",
		Phone:       pq.StringArray{"+91 00000 00000"},
		Email:       pq.StringArray{"info@boriwala.com"},
		Experience:  "25+ years",
	}
}
