package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

type SchedulePostRequest struct {
	SocialAccountID uuid.UUID `json:"socialAccountId"`
	Content         string    `json:"content"`
	ScheduledFor    time.Time `json:"scheduledFor"`
	MediaURL        *string   `json:"mediaUrl,omitempty"`
}

type ScheduledPostDto struct {
	ID              uuid.UUID `json:"id"`
	SocialAccountID uuid.UUID `json:"socialAccountId"`
	Content         string    `json:"content"`
	ScheduledFor    time.Time `json:"scheduledFor"`
	MediaURL        *string   `json:"mediaUrl,omitempty"`
	Status          string    `json:"status"`
}

func ToScheduledPostDto(p *models.ScheduledPost) *ScheduledPostDto {
	return &ScheduledPostDto{
		ID:              p.ID,
		SocialAccountID: p.SocialAccountID,
		Content:         p.Content,
		ScheduledFor:    p.ScheduledFor,
		MediaURL:        p.MediaURL,
		Status:          p.Status,
	}
}

type PublishedPostDto struct {
	ID              uuid.UUID `json:"id"`
	SocialAccountID uuid.UUID `json:"socialAccountId"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"mediaUrl,omitempty"`
	PostedAt        time.Time `json:"postedAt"`
	Likes           int       `json:"likes"`
	Comments        int       `json:"comments"`
	Shares          int       `json:"shares"`
	Views           int       `json:"views"`
}

func ToPublishedPostDto(p *models.PublishedPost) *PublishedPostDto {
	return &PublishedPostDto{
		ID:              p.ID,
		SocialAccountID: p.SocialAccountID,
		Content:         p.Content,
		MediaURL:        p.MediaURL,
		PostedAt:        p.PostedAt,
		Likes:           p.Likes,
		Comments:        p.Comments,
		Shares:          p.Shares,
		Views:           p.Views,
	}
}
