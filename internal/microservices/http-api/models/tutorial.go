package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tutorial struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	VideoURL    string    `gorm:"not null" json:"videoUrl"`
	AuthorEmail string    `gorm:"index" json:"authorEmail"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Tutorial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (Tutorial) TableName() string {
	return "tutorials"
}
