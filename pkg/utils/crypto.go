package utils

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted one-way bcrypt hash. Verification recomputes
// and compares; the plaintext is never recoverable from the stored value.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
