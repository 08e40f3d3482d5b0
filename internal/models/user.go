// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User covers admin, editor and buyer accounts. Buyers carry two
// admin-controlled flags: IsActive gates authentication, IsApproved gates
// price visibility. A deactivated buyer stays unapproved for pricing purposes
// even if IsApproved is still true.
type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"size:100;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Phone        string   `json:"phone" gorm:"size:30"`
	CompanyName  string   `json:"companyName" gorm:"size:255"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);default:'buyer';index"`
	IsActive     bool     `json:"isActive" gorm:"default:true"`
	IsApproved   bool     `json:"isApproved" gorm:"default:false"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
