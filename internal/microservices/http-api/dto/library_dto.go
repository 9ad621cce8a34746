package dto

import (
	"time"

	"bookworm/internal/microservices/http-api/models"
)

// AddToLibraryRequest: payload for POST /my-library. BookID and UserEmail form the upsert key
// and are not required; a request missing either still upserts.
type AddToLibraryRequest struct {
	BookID      string `json:"bookId"`
	UserEmail   string `json:"userEmail"`
	Shelf       string `json:"shelf"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	AuthorEmail string `json:"authorEmail"`
	TotalPages  int    `json:"totalPages" binding:"omitempty,min=0"`
}

// ToModel builds a fresh entry; Progress and AddedAt only matter when the upsert inserts.
func (r AddToLibraryRequest) ToModel(now time.Time) models.LibraryEntry {
	return models.LibraryEntry{
		BookID:      r.BookID,
		UserEmail:   r.UserEmail,
		Shelf:       r.Shelf,
		Title:       r.Title,
		Image:       r.Image,
		Author:      r.Author,
		AuthorEmail: r.AuthorEmail,
		TotalPages:  r.TotalPages,
		Progress:    0,
		AddedAt:     now,
	}
}
