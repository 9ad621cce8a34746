package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category names are unique ignoring case; the repository enforces it on create.
type Category struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	AuthorEmail string    `gorm:"index" json:"authorEmail"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Category) TableName() string {
	return "categories"
}
