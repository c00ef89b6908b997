package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

type ConnectAccountRequest struct {
	Provider       string     `json:"provider"`
	ProviderUserID string     `json:"providerUserId"`
	DisplayName    string     `json:"displayName"`
	AccessToken    string     `json:"accessToken"`
	RefreshToken   *string    `json:"refreshToken,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

// SocialAccountDto deliberately omits the stored access and refresh tokens.
type SocialAccountDto struct {
	ID             uuid.UUID       `json:"id"`
	Provider       models.Provider `json:"provider"`
	ProviderUserID string          `json:"providerUserId"`
	DisplayName    string          `json:"displayName"`
	ConnectedAt    time.Time       `json:"connectedAt"`
}

func ToSocialAccountDto(a *models.SocialAccount) *SocialAccountDto {
	return &SocialAccountDto{
		ID:             a.ID,
		Provider:       a.Provider,
		ProviderUserID: a.ProviderUserID,
		DisplayName:    a.DisplayName,
		ConnectedAt:    a.ConnectedAt,
	}
}
