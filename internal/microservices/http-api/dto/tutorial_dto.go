package dto

import "bookworm/internal/microservices/http-api/models"

// CreateTutorialDTO used for POST /tutorials
type CreateTutorialDTO struct {
	Title       string `json:"title" binding:"required"`
	VideoURL    string `json:"videoUrl" binding:"required,url"`
	AuthorEmail string `json:"authorEmail"`
}

// UpdateTutorialDTO used for PUT /tutorials/:id
type UpdateTutorialDTO struct {
	Title    *string `json:"title,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty" binding:"omitempty,url"`
}

func (d CreateTutorialDTO) ToModel() models.Tutorial {
	return models.Tutorial{
		Title:       d.Title,
		VideoURL:    d.VideoURL,
		AuthorEmail: d.AuthorEmail,
	}
}

func (d UpdateTutorialDTO) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if d.Title != nil {
		updates["title"] = *d.Title
	}
	if d.VideoURL != nil {
		updates["video_url"] = *d.VideoURL
	}
	return updates
}
