// Package server exposes the picker core as a JSON HTTP API.
package server

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/config"
	"github.com/hy4ri/datepicker-tui/internal/format"
	"github.com/hy4ri/datepicker-tui/internal/locale"
	"github.com/hy4ri/datepicker-tui/internal/picker"
)

// Options configure New.
type Options struct {
	Config *config.Config
	Clock  calendar.Clock

	// Token, when set, is required as a bearer token on /api routes.
	Token string

	// Quiet drops the request logger.
	Quiet bool
}

// Server wraps the fiber app and the picker settings it serves.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	layout format.Layout
	names  *locale.Names
	opts   picker.Options
	text   picker.Text
	token  string
}

// New builds the server and registers its routes.
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	names, err := cfg.Names()
	if err != nil {
		return nil, err
	}
	pickerOpts, err := cfg.PickerOptions(opts.Clock)
	if err != nil {
		return nil, err
	}
	if pickerOpts.Clock == nil {
		pickerOpts.Clock = calendar.SystemClock
	}

	s := &Server{
		cfg:    cfg,
		layout: layout,
		names:  names,
		opts:   pickerOpts,
		text:   cfg.Text(),
		token:  opts.Token,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "datepicker",
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())
	if !opts.Quiet {
		s.app.Use(logger.New())
	}
	s.registerRoutes()
	return s, nil
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.Health)

	api := s.app.Group("/api", s.tokenRequired)
	api.Get("/grid", s.Grid)
	api.Get("/format", s.Format)
	api.Get("/parse", s.Parse)
	api.Get("/validate", s.Validate)
	api.Get("/navigate", s.Navigate)
}

// Listen serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}

func (s *Server) tokenRequired(c *fiber.Ctx) error {
	if s.token == "" {
		return c.Next()
	}
	got, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
