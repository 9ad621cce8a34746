package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `gorm:"index" json:"author"`
	Genre       string    `gorm:"index" json:"genre"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	TotalPages  int       `gorm:"default:0" json:"totalPages"`
	AuthorEmail string    `gorm:"index" json:"authorEmail"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
