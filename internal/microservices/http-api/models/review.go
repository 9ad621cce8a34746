package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review is written by ReviewerEmail about a book owned by AuthorEmail.
type Review struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	BookID        string    `gorm:"index;not null" json:"bookId"`
	BookTitle     string    `json:"bookTitle"`
	AuthorEmail   string    `gorm:"index" json:"authorEmail"`
	ReviewerEmail string    `gorm:"index;not null" json:"reviewerEmail"`
	Reviewer      string    `json:"reviewer"`
	Review        string    `gorm:"type:text" json:"review"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Status        string    `gorm:"default:'pending';not null;index" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
