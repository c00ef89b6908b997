package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider identifies the external social platform an account belongs to.
type Provider string

const (
	ProviderFacebook  Provider = "facebook"
	ProviderInstagram Provider = "instagram"
	ProviderTwitter   Provider = "twitter"
	ProviderYouTube   Provider = "youtube"
)

func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(s)) {
	case ProviderFacebook:
		return ProviderFacebook, nil
	case ProviderInstagram:
		return ProviderInstagram, nil
	case ProviderTwitter:
		return ProviderTwitter, nil
	case ProviderYouTube:
		return ProviderYouTube, nil
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

type SocialAccount struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	Provider       Provider   `db:"provider" json:"provider"`
	ProviderUserID string     `db:"provider_user_id" json:"provider_user_id"`
	DisplayName    string     `db:"display_name" json:"display_name"`
	AccessToken    string     `db:"access_token" json:"-"`
	RefreshToken   *string    `db:"refresh_token" json:"-"`
	ExpiresAt      *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	ConnectedAt    time.Time  `db:"connected_at" json:"connected_at"`
}
