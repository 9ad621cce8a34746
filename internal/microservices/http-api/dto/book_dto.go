package dto

import "bookworm/internal/microservices/http-api/models"

// CreateBookDTO used for POST /books
type CreateBookDTO struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Image       string `json:"image"`
	TotalPages  int    `json:"totalPages" binding:"omitempty,min=0"`
	AuthorEmail string `json:"authorEmail" binding:"required"`
}

// UpdateBookDTO used for PUT /books/:id (partial updates allowed)
type UpdateBookDTO struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	TotalPages  *int    `json:"totalPages,omitempty" binding:"omitempty,min=0"`
}

// BookFilters is bound from the GET /books query string
type BookFilters struct {
	PageQuery
	Genre       string `form:"genre"`
	Search      string `form:"search"`
	AuthorEmail string `form:"authorEmail"`
	Sort        string `form:"sort"` // newest (default), oldest, title
}

type BookListResponse struct {
	Data       []models.Book `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Converters
func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		Author:      d.Author,
		Genre:       d.Genre,
		Description: d.Description,
		Image:       d.Image,
		TotalPages:  d.TotalPages,
		AuthorEmail: d.AuthorEmail,
	}
}

// Updates returns only the provided fields keyed by column name
func (d UpdateBookDTO) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if d.Title != nil {
		updates["title"] = *d.Title
	}
	if d.Author != nil {
		updates["author"] = *d.Author
	}
	if d.Genre != nil {
		updates["genre"] = *d.Genre
	}
	if d.Description != nil {
		updates["description"] = *d.Description
	}
	if d.Image != nil {
		updates["image"] = *d.Image
	}
	if d.TotalPages != nil {
		updates["total_pages"] = *d.TotalPages
	}
	return updates
}
