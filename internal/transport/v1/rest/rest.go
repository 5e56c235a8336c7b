package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/chup1x/carmodels/internal/config"
	"github.com/chup1x/carmodels/internal/prerender"
	resultserv "github.com/chup1x/carmodels/internal/services/results"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
	pagescntrl "github.com/chup1x/carmodels/internal/transport/v1/rest/pages"
	vehiclescntrl "github.com/chup1x/carmodels/internal/transport/v1/rest/vehicles"
	"github.com/chup1x/carmodels/internal/view"
)

const shutdownTimeout = 10 * time.Second

// Deps are the services the HTTP surface is built on.
type Deps struct {
	Selector *selectorserv.SelectorService
	Results  *resultserv.ResultService
	Cache    *prerender.Cache
	Renderer *view.Renderer
	Logger   *slog.Logger
}

type Server struct {
	app    *fiber.App
	config *config.Config
	log    *slog.Logger
}

func New(config *config.Config, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Server{config: config, log: log}

	var notFound fiber.Handler
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound && notFound != nil {
				return notFound(c)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})

	s.app.Use(recover.New())
	s.app.Use(requestIDMiddleware)
	s.app.Use(loggingMiddleware(log))
	s.app.Use(metricsMiddleware)

	s.app.Get("/health", healthHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	limiter := rate.NewLimiter(rate.Limit(config.Server.RateLimit), config.Server.RateLimitBurst)
	s.app.Use(rateLimitMiddleware(limiter))

	api := s.app.Group("/api/v1")
	vehiclescntrl.RegisterVehiclesRoutes(api, deps.Selector, deps.Results)

	pages := pagescntrl.RegisterPageRoutes(s.app, deps.Selector, deps.Cache, deps.Renderer, log)
	notFound = pages.NotFound

	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				s.log.Error("shutdown web server", "error", err)
			}
		case <-done:
		}
	}()

	addr := fmt.Sprintf(":%s", s.config.Server.Port)
	s.log.Info("starting web server", "addr", addr)
	if err := s.app.Listen(addr); err != nil {
		return fmt.Errorf("server start: unable to start web server: %w", err)
	}

	return nil
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
