// Package models contains database model definitions.
package models

import (
	"time"
)

// BlogPost represents a published article on the agency site.
// The slug is the public lookup key, the id is the internal primary key.
type BlogPost struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the display title of the post.
	Title string `gorm:"size:255;not null" json:"title"`
	// Slug is the unique URL-safe identifier used by /api/blog/:slug.
	Slug string `gorm:"unique;size:255;not null" json:"slug"`
	// Excerpt is the short summary shown on list pages.
	Excerpt string `gorm:"type:text;not null" json:"excerpt"`
	// Content is the rich text/HTML body.
	Content string `gorm:"type:text;not null" json:"content"`
	// Image is the header image URL.
	Image string `gorm:"size:512;not null" json:"image"`
	// Category is a free-text label, also drives related-post lookup.
	Category string `gorm:"size:100;not null" json:"category"`
	// AuthorID references the User who wrote the post.
	AuthorID uint64 `gorm:"column:author_id;not null" json:"authorId"`
	// CreatedAt is the publication timestamp, lists are ordered by it descending.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the last modification timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}
