// Package store implements the content store backing the site API: authors,
// blog posts, contact submissions and newsletter subscriptions. Two backends
// exist, an in-process MemStorage (default) and a gorm based DBStorage, both
// satisfying the Storage interface with identical semantics.
package store

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/novera-digital/novera-site/internal/db/models"
)

// DefaultPostLimit is used when a caller passes a non-positive limit to the
// recent and related post lookups.
const DefaultPostLimit = 3

var (
	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when no blog post matches the given id or slug.
	ErrPostNotFound = errors.New("blog post not found")
	// ErrSubscriptionNotFound is returned when no newsletter subscription matches the given email.
	ErrSubscriptionNotFound = errors.New("newsletter subscription not found")
	// ErrDuplicateUsername is returned when creating a user with a username that is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateSlug is returned when creating a blog post with a slug that is already taken.
	ErrDuplicateSlug = errors.New("blog post slug already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Storage is the content store contract shared by all backends.
//
// Lookups signal absence with the sentinel errors above, never with a panic.
// List results are ordered by creation timestamp descending with the id as a
// stable tie breaker, except for related posts (see GetRelatedBlogPosts).
type Storage interface {
	// Users
	GetUser(id uint64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) (*models.User, error)

	// Blog posts
	GetBlogPosts() ([]models.BlogPost, error)
	GetBlogPostByID(id uint64) (*models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	GetRecentBlogPosts(limit int) ([]models.BlogPost, error)
	// GetRelatedBlogPosts returns up to limit posts sharing the category of
	// the given post, excluding the post itself. The order is randomized so
	// suggestions vary across requests, unless the backend was constructed
	// with deterministic ordering (then ordered by id ascending).
	GetRelatedBlogPosts(postID uint64, limit int) ([]models.BlogPost, error)
	CreateBlogPost(post *models.BlogPost) (*models.BlogPost, error)

	// Contact submissions
	CreateContactSubmission(submission *models.ContactSubmission) (*models.ContactSubmission, error)
	GetContactSubmissions() ([]models.ContactSubmission, error)

	// Newsletter subscriptions. Subscribe is an upsert with reactivation:
	// subscribing twice with the same email never produces two records.
	SubscribeToNewsletter(email string) (*models.NewsletterSubscription, error)
	UnsubscribeFromNewsletter(email string) (bool, error)
	GetNewsletterSubscriptions() ([]models.NewsletterSubscription, error)
}

// normalizeLimit maps non-positive limits to the default.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPostLimit
	}

	return limit
}

// orderRelated orders a related-post candidate set: shuffled by default,
// by id ascending when deterministic output was requested.
func orderRelated(posts []models.BlogPost, deterministic bool) {
	if deterministic {
		sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

		return
	}

	rand.Shuffle(len(posts), func(i, j int) { posts[i], posts[j] = posts[j], posts[i] })
}

// sortPostsNewestFirst orders posts by creation timestamp descending with the
// id descending as stable tie breaker, so list output is deterministic.
func sortPostsNewestFirst(posts []models.BlogPost) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}

		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func sortContactsNewestFirst(submissions []models.ContactSubmission) {
	sort.Slice(submissions, func(i, j int) bool {
		if submissions[i].CreatedAt.Equal(submissions[j].CreatedAt) {
			return submissions[i].ID > submissions[j].ID
		}

		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
}

func sortSubscriptionsNewestFirst(subscriptions []models.NewsletterSubscription) {
	sort.Slice(subscriptions, func(i, j int) bool {
		if subscriptions[i].CreatedAt.Equal(subscriptions[j].CreatedAt) {
			return subscriptions[i].ID > subscriptions[j].ID
		}

		return subscriptions[i].CreatedAt.After(subscriptions[j].CreatedAt)
	})
}
