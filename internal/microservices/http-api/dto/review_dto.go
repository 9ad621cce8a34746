package dto

import "bookworm/internal/microservices/http-api/models"

// CreateReviewDTO used for POST /reviews. Rating is range-checked by the service.
type CreateReviewDTO struct {
	BookID        string `json:"bookId" binding:"required"`
	BookTitle     string `json:"bookTitle"`
	AuthorEmail   string `json:"authorEmail"`
	ReviewerEmail string `json:"reviewerEmail" binding:"required"`
	Reviewer      string `json:"reviewer"`
	Review        string `json:"review"`
	Rating        int    `json:"rating" binding:"required"`
}

func (d CreateReviewDTO) ToModel() models.Review {
	return models.Review{
		BookID:        d.BookID,
		BookTitle:     d.BookTitle,
		AuthorEmail:   d.AuthorEmail,
		ReviewerEmail: d.ReviewerEmail,
		Reviewer:      d.Reviewer,
		Review:        d.Review,
		Rating:        d.Rating,
		Status:        models.ReviewPending,
	}
}
