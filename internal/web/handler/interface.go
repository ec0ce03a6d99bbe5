// Package handler holds the shared plumbing for the web handlers: the handler
// service contract, common response shapes and the validation error flattener.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/store"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, st store.Storage)
}

// MessageResponse is the uniform body for plain status responses and all
// error responses. Clients rely on the single message string shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body for successful resource creation, echoing the
// assigned id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}
