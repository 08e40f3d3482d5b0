// internal/models/settings.go
package models

import "github.com/lib/pq"

// SiteSettings is a single-row table created lazily with company defaults.
type SiteSettings struct {
	BaseModel
	CompanyName    string         `json:"companyName" gorm:"size:255;default:'Boriwala Trading Co.'"`
	Tagline        string         `json:"tagline" gorm:"size:255"`
	Phone          pq.StringArray `json:"phone" gorm:"type:text[]"`
	Email          pq.StringArray `json:"email" gorm:"type:text[]"`
	Address        string         `json:"address" gorm:"type:text"`
	WhatsappNumber string         `json:"whatsappNumber" gorm:"size:30"`
	GoogleMapEmbed string         `json:"googleMapEmbed" gorm:"type:text"`
	SocialLinks    JSONB          `json:"socialLinks" gorm:"type:jsonb"`
	AboutUs        string         `json:"aboutUs" gorm:"type:text"`
	AboutUsShort   string         `json:"aboutUsShort" gorm:"type:text"`
	Experience     string         `json:"experience" gorm:"size:100"`
	Infrastructure string         `json:"infrastructure" gorm:"type:text"`
	Certifications pq.StringArray `json:"certifications" gorm:"type:text[]"`
	Strengths      pq.StringArray `json:"strengths" gorm:"type:text[]"`
	Logo           string         `json:"logo" gorm:"type:text"`
	HeroImages     pq.StringArray `json:"heroImages" gorm:"type:text[]"`
	HeroTitle      string         `json:"heroTitle" gorm:"size:255"`
	HeroSubtitle   string         `json:"heroSubtitle" gorm:"size:500"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
