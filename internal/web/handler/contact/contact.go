// Package contact implements the contact form submission endpoint.
package contact

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/models"
	"github.com/novera-digital/novera-site/internal/notify"
	"github.com/novera-digital/novera-site/internal/store"
	"github.com/novera-digital/novera-site/internal/web/handler"
)

const (
	// Path is the path of the contact form endpoint.
	Path = handler.APIPath + "/contact"

	// SuccessMessage is returned after a stored submission.
	SuccessMessage = "Message received! We'll get back to you shortly."
)

// Request is the contact form payload. Validation happens before the store is
// touched, a failing request never writes anything.
type Request struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

// Service is the contact form handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	store     store.Storage
	notifier  notify.Notifier
	validator *validator.Validate
}

// Handler is the contact form handler.
var Handler = Service{}

// Init initializes the contact form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Storage, notifier notify.Notifier) {
	if app == nil || cfg == nil || st == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = st
	s.notifier = notifier
	s.validator = validator.New()

	app.Post(Path, s.Post)
}

// Post handles the contact form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("failed to parse contact form body")

		return c.Status(fiber.StatusBadRequest).
			JSON(handler.MessageResponse{Message: "Invalid form data"})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(handler.MessageResponse{Message: handler.ValidationMessage(err)})
	}

	submission, err := s.store.CreateContactSubmission(&models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")

		return c.Status(fiber.StatusInternalServerError).
			JSON(handler.MessageResponse{Message: handler.InternalErrorMessage})
	}

	// fire-and-forget: delivery failures never affect the client response
	if s.notifier != nil {
		s.notifier.ContactSubmitted(submission)
	}

	return c.Status(fiber.StatusCreated).JSON(handler.CreatedResponse{
		Message: SuccessMessage,
		ID:      submission.ID,
	})
}
