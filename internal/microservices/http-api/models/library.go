package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shelf labels the reader statistics count. The set is open: any label is stored as given.
const (
	ShelfWantToRead       = "Want to Read"
	ShelfCurrentlyReading = "Currently Reading"
	ShelfRead             = "Read"
)

// LibraryEntry is one book on one user's shelf. Title, Image, Author and AuthorEmail are a
// snapshot of the book taken when it was shelved and are not refreshed afterwards.
type LibraryEntry struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	BookID      string    `gorm:"uniqueIndex:idx_library_book_user;not null" json:"bookId"`
	UserEmail   string    `gorm:"uniqueIndex:idx_library_book_user;index;not null" json:"userEmail"`
	Shelf       string    `gorm:"index" json:"shelf"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	TotalPages  int       `gorm:"not null;default:0" json:"totalPages"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	AddedAt     time.Time `gorm:"not null" json:"addedAt"`
}

func (e *LibraryEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

func (LibraryEntry) TableName() string {
	return "my_library"
}
