package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/novera-digital/novera-site/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *DBStorage {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.ContactSubmission{},
		&models.NewsletterSubscription{},
	)
	require.NoError(t, err, "failed to migrate test database")

	s, err := NewDBStorage(db, false)
	require.NoError(t, err)

	return s
}

func TestNewDBStorageNilDB(t *testing.T) {
	_, err := NewDBStorage(nil, false)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestDBStorageUsers(t *testing.T) {
	s := setupTestDB(t)

	created, err := s.CreateUser(&models.User{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byName, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.GetUser(9999)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.CreateUser(&models.User{Username: "admin"})
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestDBStorageBlogPosts(t *testing.T) {
	s := setupTestDB(t)
	seeded := seedTestPosts(t, s)

	posts, err := s.GetBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, len(seeded))

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt),
			"posts must be ordered newest first")
	}

	for _, post := range seeded {
		found, err := s.GetBlogPostBySlug(post.Slug)
		require.NoError(t, err)
		assert.Equal(t, post.ID, found.ID)
	}

	_, err = s.GetBlogPostBySlug("unknown-slug-xyz")
	require.ErrorIs(t, err, ErrPostNotFound)

	_, err = s.CreateBlogPost(&models.BlogPost{Title: "Copy", Slug: "web-trends", Category: "Web Development"})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	recent, err := s.GetRecentBlogPosts(0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultPostLimit)
}

func TestDBStorageRelatedBlogPosts(t *testing.T) {
	s := setupTestDB(t)
	seeded := seedTestPosts(t, s)

	related, err := s.GetRelatedBlogPosts(seeded[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, related, 2)

	for _, post := range related {
		assert.NotEqual(t, seeded[0].ID, post.ID)
		assert.Equal(t, seeded[0].Category, post.Category)
	}

	_, err = s.GetRelatedBlogPosts(9999, 10)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestDBStorageNewsletter(t *testing.T) {
	s := setupTestDB(t)

	first, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	assert.True(t, first.Active)

	repeat, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, repeat.ID)

	ok, err := s.UnsubscribeFromNewsletter("a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	active, err := s.GetNewsletterSubscriptions()
	require.NoError(t, err)
	assert.Empty(t, active)

	reactivated, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, reactivated.ID)
	assert.True(t, reactivated.Active)

	ok, err = s.UnsubscribeFromNewsletter("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDBStorageContactSubmissions(t *testing.T) {
	s := setupTestDB(t)

	created, err := s.CreateContactSubmission(&models.ContactSubmission{
		Name: "Jane", Email: "jane@example.com", Subject: "Project inquiry", Message: "We need a new site.",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	submissions, err := s.GetContactSubmissions()
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, "jane@example.com", submissions[0].Email)
}
