package devserver

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/promptdeck/promptdeck/pkg/prompt"
)

/*
Server is a development stand-in for the real prompt manager backend. It
speaks the same three endpoints with the same request and error shapes, but
categorizes with the offline keyword fallback and keeps prompts in memory,
so the client is runnable end to end without an AI key or a database.
*/
type Server struct {
	app   *fiber.App
	store *Store
}

func New() *Server {
	srv := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "promptdeck-dev",
			ServerHeader: "Promptdeck-Dev-Server",
		}),
		store: NewStore(),
	}

	srv.app.Use(logger.New(), healthcheck.NewHealthChecker())
	srv.app.Get("/", srv.handleRoot)
	srv.app.Post("/categorize", srv.handleCategorize)
	srv.app.Post("/prompts", srv.handleCreate)
	srv.app.Get("/prompts", srv.handleList)

	return srv
}

func (srv *Server) Listen(addr string) error {
	log.Info("dev backend listening", "addr", addr)
	return srv.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// App exposes the underlying fiber app for in-process testing.
func (srv *Server) App() *fiber.App { return srv.app }

func (srv *Server) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

type categorizeRequest struct {
	Content string `json:"content"`
}

type createRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
}

func (srv *Server) handleCategorize(ctx fiber.Ctx) error {
	var req categorizeRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return detailError(ctx, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	return ctx.JSON(Suggest(req.Content, srv.store.Categories()))
}

func (srv *Server) handleCreate(ctx fiber.Ctx) error {
	var req createRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return detailError(ctx, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	created := srv.store.Insert(req.Category, req.Content, req.Summary)
	return ctx.JSON(created)
}

func (srv *Server) handleList(ctx fiber.Ctx) error {
	prompts := srv.store.List()
	if prompts == nil {
		prompts = []prompt.Prompt{}
	}
	return ctx.JSON(prompts)
}

// detailError writes the backend's error envelope.
func detailError(ctx fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"detail": msg})
}
