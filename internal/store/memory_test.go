package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novera-digital/novera-site/internal/db/models"
)

// seedTestPosts inserts a fixed set of posts with distinct timestamps.
func seedTestPosts(t *testing.T, s Storage) []models.BlogPost {
	t.Helper()

	author, err := s.CreateUser(&models.User{Username: "admin", Password: "x"})
	require.NoError(t, err)

	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	seed := []models.BlogPost{
		{Title: "Web Trends", Slug: "web-trends", Excerpt: "e", Content: "c", Image: "i", Category: "Web Development", AuthorID: author.ID, CreatedAt: base.AddDate(0, 0, 3), UpdatedAt: base.AddDate(0, 0, 3)},
		{Title: "SEO Strategies", Slug: "seo-strategies", Excerpt: "e", Content: "c", Image: "i", Category: "Digital Marketing", AuthorID: author.ID, CreatedAt: base.AddDate(0, 0, 2), UpdatedAt: base.AddDate(0, 0, 2)},
		{Title: "Color Psychology", Slug: "color-psychology", Excerpt: "e", Content: "c", Image: "i", Category: "Design", AuthorID: author.ID, CreatedAt: base.AddDate(0, 0, 1), UpdatedAt: base.AddDate(0, 0, 1)},
		{Title: "Responsive Layouts", Slug: "responsive-layouts", Excerpt: "e", Content: "c", Image: "i", Category: "Web Development", AuthorID: author.ID, CreatedAt: base, UpdatedAt: base},
		{Title: "Accessible Forms", Slug: "accessible-forms", Excerpt: "e", Content: "c", Image: "i", Category: "Web Development", AuthorID: author.ID, CreatedAt: base.AddDate(0, 0, -1), UpdatedAt: base.AddDate(0, 0, -1)},
	}

	created := make([]models.BlogPost, 0, len(seed))
	for i := range seed {
		post, err := s.CreateBlogPost(&seed[i])
		require.NoError(t, err)
		created = append(created, *post)
	}

	return created
}

func TestMemStorageUsers(t *testing.T) {
	s := NewMemStorage(false)

	created, err := s.CreateUser(&models.User{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)

	byID, err := s.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	byName, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.GetUser(42)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.CreateUser(&models.User{Username: "admin"})
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestMemStorageBlogPostOrdering(t *testing.T) {
	s := NewMemStorage(false)
	seedTestPosts(t, s)

	posts, err := s.GetBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 5)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt),
			"posts must be ordered newest first")
	}

	assert.Equal(t, "web-trends", posts[0].Slug)
}

func TestMemStorageSlugRoundTrip(t *testing.T) {
	s := NewMemStorage(false)
	seeded := seedTestPosts(t, s)

	for _, post := range seeded {
		found, err := s.GetBlogPostBySlug(post.Slug)
		require.NoError(t, err)
		assert.Equal(t, post.ID, found.ID)
	}

	_, err := s.GetBlogPostBySlug("unknown-slug-xyz")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestMemStorageDuplicateSlug(t *testing.T) {
	s := NewMemStorage(false)
	seedTestPosts(t, s)

	_, err := s.CreateBlogPost(&models.BlogPost{Title: "Copy", Slug: "web-trends", Category: "Web Development"})
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestMemStorageRecentBlogPosts(t *testing.T) {
	s := NewMemStorage(false)
	seedTestPosts(t, s)

	testCases := []struct {
		name      string
		limit     int
		wantCount int
	}{
		{name: "default limit on zero", limit: 0, wantCount: 3},
		{name: "default limit on negative", limit: -1, wantCount: 3},
		{name: "explicit limit", limit: 2, wantCount: 2},
		{name: "limit above count", limit: 10, wantCount: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			posts, err := s.GetRecentBlogPosts(tc.limit)
			require.NoError(t, err)
			assert.Len(t, posts, tc.wantCount)
		})
	}
}

func TestMemStorageRelatedBlogPosts(t *testing.T) {
	s := NewMemStorage(false)
	seeded := seedTestPosts(t, s)

	// web-trends shares its category with responsive-layouts and accessible-forms
	base := seeded[0]

	related, err := s.GetRelatedBlogPosts(base.ID, 10)
	require.NoError(t, err)
	require.Len(t, related, 2)

	// order is randomized, assert on the candidate set
	slugs := map[string]bool{}
	for _, post := range related {
		assert.NotEqual(t, base.ID, post.ID, "related posts must exclude the post itself")
		assert.Equal(t, base.Category, post.Category)
		slugs[post.Slug] = true
	}

	assert.True(t, slugs["responsive-layouts"])
	assert.True(t, slugs["accessible-forms"])

	// limit truncates the candidate set
	related, err = s.GetRelatedBlogPosts(base.ID, 1)
	require.NoError(t, err)
	assert.Len(t, related, 1)

	// no posts in the same category
	related, err = s.GetRelatedBlogPosts(seeded[1].ID, 10)
	require.NoError(t, err)
	assert.Empty(t, related)

	// unknown base post
	_, err = s.GetRelatedBlogPosts(999, 10)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestMemStorageRelatedDeterministic(t *testing.T) {
	s := NewMemStorage(true)
	seeded := seedTestPosts(t, s)

	related, err := s.GetRelatedBlogPosts(seeded[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, related, 2)

	// ordered by id ascending when deterministic output is configured
	assert.Equal(t, "responsive-layouts", related[0].Slug)
	assert.Equal(t, "accessible-forms", related[1].Slug)
}

func TestMemStorageContactSubmissions(t *testing.T) {
	s := NewMemStorage(false)

	first, err := s.CreateContactSubmission(&models.ContactSubmission{
		Name: "Jane", Email: "jane@example.com", Subject: "Project inquiry", Message: "We need a new site.",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.CreateContactSubmission(&models.ContactSubmission{
		Name: "John", Email: "john@example.com", Subject: "Another inquiry", Message: "Redesign please.",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)

	submissions, err := s.GetContactSubmissions()
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, second.ID, submissions[0].ID)
}

func TestMemStorageSubscribeToNewsletter(t *testing.T) {
	s := NewMemStorage(false)

	// first subscription creates a record
	first, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.ID)
	assert.True(t, first.Active)

	// subscribing twice must never produce two records
	repeat, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, repeat.ID)

	active, err := s.GetNewsletterSubscriptions()
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// unsubscribe flips the flag, keeps the record
	ok, err := s.UnsubscribeFromNewsletter("a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	active, err = s.GetNewsletterSubscriptions()
	require.NoError(t, err)
	assert.Empty(t, active)

	// re-subscription reactivates the existing record, same id
	reactivated, err := s.SubscribeToNewsletter("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, reactivated.ID)
	assert.True(t, reactivated.Active)
}

func TestMemStorageUnsubscribeIdempotent(t *testing.T) {
	s := NewMemStorage(false)

	// unknown email is not an error
	ok, err := s.UnsubscribeFromNewsletter("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.SubscribeToNewsletter("b@x.com")
	require.NoError(t, err)

	ok, err = s.UnsubscribeFromNewsletter("b@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	// unsubscribing an already inactive record still succeeds
	ok, err = s.UnsubscribeFromNewsletter("b@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemStorageNewsletterListing(t *testing.T) {
	s := NewMemStorage(false)

	for _, email := range []string{"one@x.com", "two@x.com", "three@x.com"} {
		_, err := s.SubscribeToNewsletter(email)
		require.NoError(t, err)
	}

	_, err := s.UnsubscribeFromNewsletter("two@x.com")
	require.NoError(t, err)

	active, err := s.GetNewsletterSubscriptions()
	require.NoError(t, err)
	require.Len(t, active, 2)

	for _, subscription := range active {
		assert.True(t, subscription.Active)
		assert.NotEqual(t, "two@x.com", subscription.Email)
	}
}
