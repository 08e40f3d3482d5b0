// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the primary key client-side so inserts do not depend
// on the database default.
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// AttributeMap is a string-to-string JSONB column holding the per-category
// filter attributes of a product (e.g. {"quality": "gold"}).
type AttributeMap map[string]string

func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *AttributeMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Enums
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleBuyer  UserRole = "buyer"
)

type ProductCondition string

const (
	ConditionNew      ProductCondition = "new"
	ConditionOld      ProductCondition = "old"
	ConditionRejected ProductCondition = "rejected"
)

type Availability string

const (
	AvailabilityInStock     Availability = "in_stock"
	AvailabilityOutOfStock  Availability = "out_of_stock"
	AvailabilityOnDemand    Availability = "on_demand"
	AvailabilityMakeToOrder Availability = "make_to_order"
)

type SellerEnquiryStatus string

const (
	SellerEnquiryNew         SellerEnquiryStatus = "new"
	SellerEnquiryContacted   SellerEnquiryStatus = "contacted"
	SellerEnquiryNegotiating SellerEnquiryStatus = "negotiating"
	SellerEnquiryClosed      SellerEnquiryStatus = "closed"
	SellerEnquiryRejected    SellerEnquiryStatus = "rejected"
)

type NotificationType string

const (
	NotificationOffer      NotificationType = "offer"
	NotificationPriceDrop  NotificationType = "price_drop"
	NotificationNewProduct NotificationType = "new_product"
	NotificationGeneral    NotificationType = "general"
)

type DevicePlatform string

const (
	PlatformAndroid DevicePlatform = "android"
	PlatformIOS     DevicePlatform = "ios"
)
