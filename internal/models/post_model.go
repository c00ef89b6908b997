package models

import (
	"time"

	"github.com/google/uuid"
)

type ScheduledPost struct {
	ID              uuid.UUID `db:"id" json:"id"`
	SocialAccountID uuid.UUID `db:"social_account_id" json:"social_account_id"`
	Content         string    `db:"content" json:"content"`
	ScheduledFor    time.Time `db:"scheduled_for" json:"scheduled_for"`
	MediaURL        *string   `db:"media_url" json:"media_url,omitempty"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type PublishedPost struct {
	ID              uuid.UUID `db:"id" json:"id"`
	SocialAccountID uuid.UUID `db:"social_account_id" json:"social_account_id"`
	Content         string    `db:"content" json:"content"`
	MediaURL        *string   `db:"media_url" json:"media_url,omitempty"`
	PostedAt        time.Time `db:"posted_at" json:"posted_at"`
	ProviderPostID  string    `db:"provider_post_id" json:"provider_post_id"`
	Likes           int       `db:"likes" json:"likes"`
	Comments        int       `db:"comments" json:"comments"`
	Shares          int       `db:"shares" json:"shares"`
	Views           int       `db:"views" json:"views"`
}

const (
	PostStatusScheduled = "scheduled"
	PostStatusCanceled  = "canceled"
	PostStatusPosted    = "posted"
)
