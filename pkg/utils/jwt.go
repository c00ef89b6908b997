package utils

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	config "github.com/socialdeck/management-api/configs"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
	"github.com/socialdeck/management-api/internal/transfer"
)

// clockSkewLeeway is tolerated on expiry and issued-at checks.
const clockSkewLeeway = 2 * time.Minute

// GenerateToken signs an HS256 session token for the user. The token carries
// the user id in both the sub and nameid claims, plus email and display name,
// and expires cfg.TokenTTL after issuance.
func GenerateToken(cfg config.Config, u *models.User) (string, error) {
	return signToken(cfg, u, time.Now())
}

func signToken(cfg config.Config, u *models.User, now time.Time) (string, error) {
	name := u.Email
	if u.DisplayName != nil && *u.DisplayName != "" {
		name = *u.DisplayName
	}

	claims := transfer.TokenClaims{
		NameID: u.ID.String(),
		Email:  u.Email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{cfg.JWTAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return signedToken, nil
}

// ValidateToken verifies signature, signing method, issuer, audience and
// expiry. Every failure is reported as apperr.ErrInvalidToken so the caller
// cannot tell which check rejected the token; the real cause is logged.
func ValidateToken(cfg config.Config, tokenString string) (*transfer.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return []byte(cfg.SecretKey), nil
	},
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkewLeeway),
	)
	if err != nil {
		slog.Info("token validation failed", "error", err.Error())
		return nil, apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(*transfer.TokenClaims)
	if !ok || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}
