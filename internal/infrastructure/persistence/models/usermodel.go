package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
)

// UserModel is the persistence view of an account. Only the columns
// system messaging needs are mapped.
type UserModel struct {
	ID        uint   `gorm:"primarykey"`
	Username  string `gorm:"uniqueIndex;not null;size:60"`
	Name      string `gorm:"size:255"`
	Role      string `gorm:"not null;default:user;size:20"`
	Locale    string `gorm:"size:10"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}
