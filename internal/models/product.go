// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Specification is a single ordered key/value row shown on the product page.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecificationList is stored as a JSONB array so row order survives.
type SpecificationList []Specification

func (l SpecificationList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *SpecificationList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Product struct {
	BaseModel
	Name             string            `json:"name" gorm:"size:255;not null"`
	Slug             string            `json:"slug" gorm:"uniqueIndex;size:300;not null"`
	Description      string            `json:"description" gorm:"type:text;not null"`
	ShortDescription string            `json:"shortDescription" gorm:"type:text"`
	Images           pq.StringArray    `json:"images" gorm:"type:text[]"`
	Video            string            `json:"video" gorm:"type:text"`
	CategoryID       uuid.UUID         `json:"-" gorm:"type:uuid;not null;index"`
	SubcategoryID    *uuid.UUID        `json:"-" gorm:"type:uuid;index"`
	Condition        ProductCondition  `json:"condition" gorm:"type:varchar(20);default:'new';index"`
	Price            *float64          `json:"price,omitempty" gorm:"type:decimal(12,2)"`
	ShowPrice        bool              `json:"showPrice" gorm:"default:false"`
	Specifications   SpecificationList `json:"specifications" gorm:"type:jsonb"`
	FilterAttributes AttributeMap      `json:"filterAttributes" gorm:"type:jsonb"`
	MOQ              string            `json:"moq" gorm:"size:100;default:'1'"`
	Availability     Availability      `json:"availability" gorm:"type:varchar(20);default:'in_stock'"`
	IsFeatured       bool              `json:"isFeatured" gorm:"default:false;index"`
	IsActive         bool              `json:"isActive" gorm:"default:true"`
	Tags             pq.StringArray    `json:"tags" gorm:"type:text[]"`
	Material         string            `json:"material" gorm:"size:150"`
	ProductType      string            `json:"productType" gorm:"size:150"`

	// Loaded for display only. Category rows can be hard-deleted, so these
	// stay nil on a dangling reference instead of failing the query.
	Category    *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Subcategory *Category `json:"-" gorm:"foreignKey:SubcategoryID"`
}
