package models

import (
	"time"
)

// NewsletterSubscription represents a newsletter subscriber.
// Email is unique: re-subscribing reactivates the existing record instead of
// creating a duplicate, unsubscribing flips Active to false without deleting.
type NewsletterSubscription struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;size:255;not null" json:"email"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
