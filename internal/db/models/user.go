package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents an author account in the system.
// Users are created by the seed loader at startup; there is no login flow,
// the password is stored hashed for forward compatibility only.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username, also used to derive the author avatar.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255" json:"-"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
