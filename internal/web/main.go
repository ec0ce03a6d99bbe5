// Package web implements the fiber web service exposing the site API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	fiberlogger "github.com/novera-digital/novera-site/internal/logger/adapter/fiber"
	"github.com/novera-digital/novera-site/internal/notify"
	"github.com/novera-digital/novera-site/internal/store"
	"github.com/novera-digital/novera-site/internal/web/handler"
	"github.com/novera-digital/novera-site/internal/web/handler/blog"
	"github.com/novera-digital/novera-site/internal/web/handler/contact"
	"github.com/novera-digital/novera-site/internal/web/handler/newsletter"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	store        store.Storage
}

// Start starts the web service on the given address and blocks until the
// server was shut down.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		doneFiber <- s.App.Listen(addr)
	}()

	go s.WaitShutdown()

	if err := <-doneFiber; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// WaitShutdown waits for a termination signal and shuts the server down
// gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration, content store
// and notifier.
func New(cfg *config.Config, st store.Storage, notifier notify.Notifier) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "novera-site",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		store: st,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	if cfg.Webserver.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Webserver.CORSAllowOrigins}))
	}

	// access logging with request ids
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// rate limit form POSTs, GETs stay unthrottled
	if cfg.Webserver.RateLimitPerMin > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.Webserver.RateLimitPerMin,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() != fiber.MethodPost
			},
		}))
	}

	// liveness for load balancers, flips to 503 while draining
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
		}

		return c.SendString("OK")
	})

	// init handlers (they register their own routes)
	blog.Handler.Init(app, cfg, st)
	contact.Handler.Init(app, cfg, st, notifier)
	newsletter.Handler.Init(app, cfg, st)

	return service
}

// errorHandler shapes every error escaping a handler chain into the uniform
// JSON message body. Unexpected errors are logged and answered generically.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")

		return c.Status(code).JSON(handler.MessageResponse{Message: handler.InternalErrorMessage})
	}

	return c.Status(code).JSON(handler.MessageResponse{Message: err.Error()})
}
