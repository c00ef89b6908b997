package transfer

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"displayName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token       string    `json:"token"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName,omitempty"`
	UserID      uuid.UUID `json:"userId"`
}

type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName,omitempty"`
}

// TokenClaims is the payload carried by every session token. Subject holds
// the user id; NameID duplicates it for clients that read the name-identifier
// claim instead of sub.
type TokenClaims struct {
	NameID string `json:"nameid,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NormalizeNameID fills NameID from Subject when only the subject claim is
// present. Idempotent; runs once per request before any ownership check.
func (c *TokenClaims) NormalizeNameID() {
	if c.NameID == "" && c.Subject != "" {
		c.NameID = c.Subject
	}
}
