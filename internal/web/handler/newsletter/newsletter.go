// Package newsletter implements the newsletter subscribe and unsubscribe endpoints.
package newsletter

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/store"
	"github.com/novera-digital/novera-site/internal/web/handler"
)

const (
	// Path is the path of the newsletter subscription endpoint.
	Path = handler.APIPath + "/newsletter"

	// UnsubscribePath is the path of the unsubscribe endpoint.
	UnsubscribePath = Path + "/unsubscribe"

	// SubscribedMessage is returned after a successful subscription, also for
	// a repeated subscription of the same email (same record, same id).
	SubscribedMessage = "Subscribed successfully"

	// UnsubscribedMessage is returned after a successful unsubscribe.
	UnsubscribedMessage = "Unsubscribed successfully"

	// NotSubscribedMessage is returned when unsubscribing an unknown email.
	NotSubscribedMessage = "Email not subscribed"
)

// Request is the subscribe/unsubscribe payload.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Service is the newsletter handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	store     store.Storage
	validator *validator.Validate
}

// Handler is the newsletter handler.
var Handler = Service{}

// Init initializes the newsletter handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Storage) {
	if app == nil || cfg == nil || st == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = st
	s.validator = validator.New()

	app.Post(Path, s.Subscribe)
	app.Post(UnsubscribePath, s.Unsubscribe)
}

// Subscribe handles POST /api/newsletter. Subscribing twice with the same
// email returns the existing record, never a duplicate.
func (s *Service) Subscribe(c *fiber.Ctx) error {
	req, ok := s.parseAndValidate(c)
	if !ok {
		return nil
	}

	subscription, err := s.store.SubscribeToNewsletter(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to store newsletter subscription")

		return c.Status(fiber.StatusInternalServerError).
			JSON(handler.MessageResponse{Message: handler.InternalErrorMessage})
	}

	return c.Status(fiber.StatusCreated).JSON(handler.CreatedResponse{
		Message: SubscribedMessage,
		ID:      subscription.ID,
	})
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. The subscription
// record is flagged inactive, not deleted, so a later re-subscription
// reactivates it.
func (s *Service) Unsubscribe(c *fiber.Ctx) error {
	req, ok := s.parseAndValidate(c)
	if !ok {
		return nil
	}

	found, err := s.store.UnsubscribeFromNewsletter(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to unsubscribe from newsletter")

		return c.Status(fiber.StatusInternalServerError).
			JSON(handler.MessageResponse{Message: handler.InternalErrorMessage})
	}

	if !found {
		return c.Status(fiber.StatusNotFound).
			JSON(handler.MessageResponse{Message: NotSubscribedMessage})
	}

	return c.JSON(handler.MessageResponse{Message: UnsubscribedMessage})
}

// parseAndValidate decodes and validates the request body. On failure the 400
// response is already written and ok is false.
func (s *Service) parseAndValidate(c *fiber.Ctx) (Request, bool) {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("failed to parse newsletter body")

		_ = c.Status(fiber.StatusBadRequest).
			JSON(handler.MessageResponse{Message: "Invalid form data"})

		return req, false
	}

	if err := s.validator.Struct(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).
			JSON(handler.MessageResponse{Message: handler.ValidationMessage(err)})

		return req, false
	}

	return req, true
}
