// internal/models/enquiry.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Enquiry is a storefront buy-side intake record.
type Enquiry struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:100;not null"`
	Phone       string     `json:"phone" gorm:"size:30;not null"`
	Email       string     `json:"email" gorm:"size:255;not null"`
	CompanyName string     `json:"companyName" gorm:"size:255"`
	ProductName string     `json:"productName" gorm:"size:255"`
	ProductID   *uuid.UUID `json:"productId" gorm:"type:uuid"`
	Quantity    string     `json:"quantity" gorm:"size:100"`
	Message     string     `json:"message" gorm:"type:text;not null"`
	IsResponded bool       `json:"isResponded" gorm:"default:false;index"`
	RespondedAt *time.Time `json:"respondedAt"`
	Notes       string     `json:"notes" gorm:"type:text"`
}

// SellerEnquiry is the sell-to-us intake form record.
type SellerEnquiry struct {
	BaseModel
	Name                string              `json:"name" gorm:"size:100;not null"`
	Phone               string              `json:"phone" gorm:"size:30;not null"`
	Email               string              `json:"email" gorm:"size:255"`
	CompanyName         string              `json:"companyName" gorm:"size:255"`
	City                string              `json:"city" gorm:"size:100;not null"`
	MaterialType        string              `json:"materialType" gorm:"size:150;not null"`
	MaterialDescription string              `json:"materialDescription" gorm:"type:text"`
	Quantity            string              `json:"quantity" gorm:"size:100;not null"`
	VideoLinks          pq.StringArray      `json:"videoLinks" gorm:"type:text[]"`
	Photos              pq.StringArray      `json:"photos" gorm:"type:text[]"`
	Status              SellerEnquiryStatus `json:"status" gorm:"type:varchar(20);default:'new';index"`
	AdminNotes          string              `json:"adminNotes" gorm:"type:text"`
}
