package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/novera-digital/novera-site/internal/db/models"
)

const (
	emailQueryPattern    = "email = ?"
	slugQueryPattern     = "slug = ?"
	usernameQueryPattern = "username = ?"
)

// DBStorage is the gorm backed Storage backend for persistent deployments.
// Semantics mirror MemStorage; the newsletter upsert runs in a transaction so
// the read-modify-write cannot race across connections.
type DBStorage struct {
	db *gorm.DB

	deterministicRelated bool
}

var _ Storage = (*DBStorage)(nil)

// NewDBStorage wraps a gorm connection. The schema must already be migrated
// (see the daemon package). With deterministic set, related-post lookups are
// ordered by id instead of shuffled.
func NewDBStorage(db *gorm.DB, deterministic bool) (*DBStorage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &DBStorage{db: db, deterministicRelated: deterministic}, nil
}

// GetUser retrieves a user by id.
func (s *DBStorage) GetUser(id uint64) (*models.User, error) {
	var user models.User

	result := s.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username.
func (s *DBStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	result := s.db.Where(usernameQueryPattern, username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

// CreateUser stores a new user. The username must be unique.
func (s *DBStorage) CreateUser(user *models.User) (*models.User, error) {
	var existing models.User

	result := s.db.Where(usernameQueryPattern, user.Username).First(&existing)
	if result.Error == nil {
		return nil, ErrDuplicateUsername
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	created := *user
	if result := s.db.Create(&created); result.Error != nil {
		return nil, result.Error
	}

	return &created, nil
}

// GetBlogPosts returns all posts, newest first.
func (s *DBStorage) GetBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost

	result := s.db.Order("created_at DESC, id DESC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// GetBlogPostByID retrieves a post by its internal id.
func (s *DBStorage) GetBlogPostByID(id uint64) (*models.BlogPost, error) {
	var post models.BlogPost

	result := s.db.First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, result.Error
	}

	return &post, nil
}

// GetBlogPostBySlug retrieves a post by its unique slug.
func (s *DBStorage) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost

	result := s.db.Where(slugQueryPattern, slug).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, result.Error
	}

	return &post, nil
}

// GetRecentBlogPosts returns the newest posts, truncated to limit.
func (s *DBStorage) GetRecentBlogPosts(limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost

	result := s.db.Order("created_at DESC, id DESC").Limit(normalizeLimit(limit)).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// GetRelatedBlogPosts returns up to limit posts sharing the category of the
// given post, excluding the post itself.
func (s *DBStorage) GetRelatedBlogPosts(postID uint64, limit int) ([]models.BlogPost, error) {
	limit = normalizeLimit(limit)

	base, err := s.GetBlogPostByID(postID)
	if err != nil {
		return nil, err
	}

	var related []models.BlogPost

	result := s.db.Where("category = ? AND id <> ?", base.Category, postID).Find(&related)
	if result.Error != nil {
		return nil, result.Error
	}

	orderRelated(related, s.deterministicRelated)

	if len(related) > limit {
		related = related[:limit]
	}

	return related, nil
}

// CreateBlogPost stores a new post. The slug must be unique. Timestamps are
// filled by gorm unless the caller provides them (seed data does).
func (s *DBStorage) CreateBlogPost(post *models.BlogPost) (*models.BlogPost, error) {
	var existing models.BlogPost

	result := s.db.Where(slugQueryPattern, post.Slug).First(&existing)
	if result.Error == nil {
		return nil, ErrDuplicateSlug
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	created := *post
	if result := s.db.Create(&created); result.Error != nil {
		return nil, result.Error
	}

	return &created, nil
}

// CreateContactSubmission stores a new submission.
func (s *DBStorage) CreateContactSubmission(submission *models.ContactSubmission) (*models.ContactSubmission, error) {
	created := *submission

	if result := s.db.Create(&created); result.Error != nil {
		return nil, result.Error
	}

	return &created, nil
}

// GetContactSubmissions returns all submissions, newest first.
func (s *DBStorage) GetContactSubmissions() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission

	result := s.db.Order("created_at DESC, id DESC").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

// SubscribeToNewsletter upserts a subscription by email inside a transaction.
// An existing inactive record is reactivated, an existing active record is
// returned unchanged, an unknown email gets a new record.
func (s *DBStorage) SubscribeToNewsletter(email string) (*models.NewsletterSubscription, error) {
	var subscription models.NewsletterSubscription

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(emailQueryPattern, email).First(&subscription)

		if result.Error == nil {
			if !subscription.Active {
				subscription.Active = true

				if result := tx.Save(&subscription); result.Error != nil {
					return result.Error
				}
			}

			return nil
		}

		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		subscription = models.NewsletterSubscription{Email: email, Active: true}

		return tx.Create(&subscription).Error
	})
	if err != nil {
		return nil, err
	}

	return &subscription, nil
}

// UnsubscribeFromNewsletter flags the matching subscription inactive.
// Returns false when the email was never subscribed.
func (s *DBStorage) UnsubscribeFromNewsletter(email string) (bool, error) {
	var subscription models.NewsletterSubscription

	result := s.db.Where(emailQueryPattern, email).First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, result.Error
	}

	subscription.Active = false
	if result := s.db.Save(&subscription); result.Error != nil {
		return false, result.Error
	}

	return true, nil
}

// GetNewsletterSubscriptions returns only active subscriptions, newest first.
func (s *DBStorage) GetNewsletterSubscriptions() ([]models.NewsletterSubscription, error) {
	var subscriptions []models.NewsletterSubscription

	result := s.db.Where("active = ?", true).Order("created_at DESC, id DESC").Find(&subscriptions)
	if result.Error != nil {
		return nil, result.Error
	}

	return subscriptions, nil
}
