package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalyticsSnapshot struct {
	ID              uuid.UUID `db:"id" json:"id"`
	SocialAccountID uuid.UUID `db:"social_account_id" json:"social_account_id"`
	CapturedAt      time.Time `db:"captured_at" json:"captured_at"`
	Followers       int       `db:"followers" json:"followers"`
	Impressions     int       `db:"impressions" json:"impressions"`
	Engagements     int       `db:"engagements" json:"engagements"`
	Clicks          int       `db:"clicks" json:"clicks"`
}
