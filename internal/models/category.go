// internal/models/category.go
package models

import "github.com/google/uuid"

// Category is a two-level tree: ParentID nil means top-level, non-nil means
// subcategory. Deeper nesting is rejected at write time.
type Category struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:150;not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:160;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Image       string     `json:"image" gorm:"type:text"`
	Icon        string     `json:"icon" gorm:"size:100"`
	ParentID    *uuid.UUID `json:"parent" gorm:"type:uuid;index"`
	Order       int        `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`

	Subcategories []Category `json:"subcategories,omitempty" gorm:"-"`
}

// CategoryRef is the shape embedded into product payloads in place of the
// raw foreign key.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func (c *Category) Ref() *CategoryRef {
	if c == nil {
		return nil
	}
	return &CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
}
