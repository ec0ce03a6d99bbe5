// Package blog implements the public blog content endpoints.
package blog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/models"
	"github.com/novera-digital/novera-site/internal/store"
	"github.com/novera-digital/novera-site/internal/web/handler"
)

const (
	// Path is the base path of the blog endpoints.
	Path = handler.APIPath + "/blog"

	// NotFoundMessage is returned when no post matches the requested slug.
	NotFoundMessage = "Blog post not found"
)

// Service is the blog content handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store store.Storage
}

// Handler is the blog content handler.
var Handler = Service{}

// Init initializes the blog handler.
// The recent and related routes must be registered before the slug route so
// fiber does not capture "recent" or "related" as a slug parameter.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Storage) {
	if app == nil || cfg == nil || st == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = st

	app.Get(Path, s.List)
	app.Get(Path+"/recent", s.Recent)
	app.Get(Path+"/related/:slug", s.Related)
	app.Get(Path+"/:slug", s.Get)
}

// List handles GET /api/blog and returns all posts, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	posts, err := s.store.GetBlogPosts()
	if err != nil {
		log.Error().Err(err).Msg("failed to list blog posts")

		return internalError(c)
	}

	return c.JSON(s.withAuthors(posts))
}

// Recent handles GET /api/blog/recent?limit=N.
func (s *Service) Recent(c *fiber.Ctx) error {
	posts, err := s.store.GetRecentBlogPosts(c.QueryInt("limit", s.cfg.Blog.RecentLimit))
	if err != nil {
		log.Error().Err(err).Msg("failed to list recent blog posts")

		return internalError(c)
	}

	return c.JSON(s.withAuthors(posts))
}

// Get handles GET /api/blog/:slug.
func (s *Service) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := s.store.GetBlogPostBySlug(slug)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(handler.MessageResponse{Message: NotFoundMessage})
		}

		log.Error().Err(err).Str("slug", slug).Msg("failed to get blog post")

		return internalError(c)
	}

	return c.JSON(s.withAuthor(*post))
}

// Related handles GET /api/blog/related/:slug?limit=N. The base post is
// addressed by slug, related candidates share its category and exclude the
// post itself.
func (s *Service) Related(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := s.store.GetBlogPostBySlug(slug)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(handler.MessageResponse{Message: NotFoundMessage})
		}

		log.Error().Err(err).Str("slug", slug).Msg("failed to get base blog post")

		return internalError(c)
	}

	related, err := s.store.GetRelatedBlogPosts(post.ID, c.QueryInt("limit", s.cfg.Blog.RelatedLimit))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to list related blog posts")

		return internalError(c)
	}

	return c.JSON(s.withAuthors(related))
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(handler.MessageResponse{Message: handler.InternalErrorMessage})
}

func (s *Service) withAuthors(posts []models.BlogPost) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, s.withAuthor(post))
	}

	return out
}

// withAuthor joins the author onto the post at read time. A dangling author
// reference degrades to a placeholder identity instead of failing the request.
func (s *Service) withAuthor(post models.BlogPost) PostResponse {
	name := UnknownAuthorName

	if user, err := s.store.GetUser(post.AuthorID); err == nil {
		name = user.Username
	}

	return PostResponse{
		BlogPost: post,
		Author:   Author{Name: name, Avatar: AvatarURL(name)},
	}
}
