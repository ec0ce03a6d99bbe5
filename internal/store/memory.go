package store

import (
	"sync"
	"time"

	"github.com/novera-digital/novera-site/internal/db/models"
)

// MemStorage is the in-process Storage backend. All state lives in maps
// guarded by a single mutex: check-then-insert sequences like the newsletter
// upsert must not interleave.
type MemStorage struct {
	mu sync.Mutex

	users         map[uint64]models.User
	posts         map[uint64]models.BlogPost
	contacts      map[uint64]models.ContactSubmission
	subscriptions map[uint64]models.NewsletterSubscription

	nextUserID         uint64
	nextPostID         uint64
	nextContactID      uint64
	nextSubscriptionID uint64

	deterministicRelated bool
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage creates an empty in-memory content store. With deterministic
// set, related-post lookups are ordered by id instead of shuffled.
func NewMemStorage(deterministic bool) *MemStorage {
	return &MemStorage{
		users:         make(map[uint64]models.User),
		posts:         make(map[uint64]models.BlogPost),
		contacts:      make(map[uint64]models.ContactSubmission),
		subscriptions: make(map[uint64]models.NewsletterSubscription),

		nextUserID:         1,
		nextPostID:         1,
		nextContactID:      1,
		nextSubscriptionID: 1,

		deterministicRelated: deterministic,
	}
}

// GetUser retrieves a user by id.
func (s *MemStorage) GetUser(id uint64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username.
func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user

			return &u, nil
		}
	}

	return nil, ErrUserNotFound
}

// CreateUser assigns a sequential id and stores the user.
// The username must be unique.
func (s *MemStorage) CreateUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, ErrDuplicateUsername
		}
	}

	created := *user
	created.ID = s.nextUserID
	s.nextUserID++
	s.users[created.ID] = created

	return &created, nil
}

// GetBlogPosts returns all posts, newest first.
func (s *MemStorage) GetBlogPosts() ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}

	sortPostsNewestFirst(posts)

	return posts, nil
}

// GetBlogPostByID retrieves a post by its internal id.
func (s *MemStorage) GetBlogPostByID(id uint64) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}

	return &post, nil
}

// GetBlogPostBySlug retrieves a post by its unique slug.
func (s *MemStorage) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			p := post

			return &p, nil
		}
	}

	return nil, ErrPostNotFound
}

// GetRecentBlogPosts returns the newest posts, truncated to limit.
func (s *MemStorage) GetRecentBlogPosts(limit int) ([]models.BlogPost, error) {
	limit = normalizeLimit(limit)

	posts, err := s.GetBlogPosts()
	if err != nil {
		return nil, err
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}

	return posts, nil
}

// GetRelatedBlogPosts returns up to limit posts sharing the category of the
// given post, excluding the post itself.
func (s *MemStorage) GetRelatedBlogPosts(postID uint64, limit int) ([]models.BlogPost, error) {
	limit = normalizeLimit(limit)

	s.mu.Lock()

	base, ok := s.posts[postID]
	if !ok {
		s.mu.Unlock()

		return nil, ErrPostNotFound
	}

	var related []models.BlogPost

	for _, post := range s.posts {
		if post.ID != postID && post.Category == base.Category {
			related = append(related, post)
		}
	}

	s.mu.Unlock()

	orderRelated(related, s.deterministicRelated)

	if len(related) > limit {
		related = related[:limit]
	}

	return related, nil
}

// CreateBlogPost assigns a sequential id and current timestamps and stores
// the post. The slug must be unique. Not exposed over HTTP, used by the seed
// loader and kept for future admin tooling.
func (s *MemStorage) CreateBlogPost(post *models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.posts {
		if existing.Slug == post.Slug {
			return nil, ErrDuplicateSlug
		}
	}

	created := *post
	created.ID = s.nextPostID
	s.nextPostID++

	now := time.Now()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}

	if created.UpdatedAt.IsZero() {
		created.UpdatedAt = created.CreatedAt
	}

	s.posts[created.ID] = created

	return &created, nil
}

// CreateContactSubmission assigns a sequential id and timestamp and stores
// the submission.
func (s *MemStorage) CreateContactSubmission(submission *models.ContactSubmission) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *submission
	created.ID = s.nextContactID
	s.nextContactID++
	created.CreatedAt = time.Now()

	s.contacts[created.ID] = created

	return &created, nil
}

// GetContactSubmissions returns all submissions, newest first.
func (s *MemStorage) GetContactSubmissions() ([]models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions := make([]models.ContactSubmission, 0, len(s.contacts))
	for _, submission := range s.contacts {
		submissions = append(submissions, submission)
	}

	sortContactsNewestFirst(submissions)

	return submissions, nil
}

// SubscribeToNewsletter upserts a subscription by email. An existing inactive
// record is reactivated, an existing active record is returned unchanged and
// only an unknown email produces a new record with a fresh id.
func (s *MemStorage) SubscribeToNewsletter(email string) (*models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.subscriptions {
		if existing.Email == email {
			if !existing.Active {
				existing.Active = true
				s.subscriptions[id] = existing
			}

			return &existing, nil
		}
	}

	created := models.NewsletterSubscription{
		ID:        s.nextSubscriptionID,
		Email:     email,
		Active:    true,
		CreatedAt: time.Now(),
	}
	s.nextSubscriptionID++
	s.subscriptions[created.ID] = created

	return &created, nil
}

// UnsubscribeFromNewsletter flags the matching subscription inactive.
// Returns false when the email was never subscribed, true otherwise, also for
// an already inactive record (idempotent).
func (s *MemStorage) UnsubscribeFromNewsletter(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.subscriptions {
		if existing.Email == email {
			existing.Active = false
			s.subscriptions[id] = existing

			return true, nil
		}
	}

	return false, nil
}

// GetNewsletterSubscriptions returns only active subscriptions, newest first.
func (s *MemStorage) GetNewsletterSubscriptions() ([]models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subscriptions []models.NewsletterSubscription

	for _, subscription := range s.subscriptions {
		if subscription.Active {
			subscriptions = append(subscriptions, subscription)
		}
	}

	sortSubscriptionsNewestFirst(subscriptions)

	return subscriptions, nil
}
