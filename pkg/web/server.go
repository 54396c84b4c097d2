// Package web hosts the bingo engine: the tool API the conversational agent
// calls, the transcript intake, and the websocket board channel the display
// clients watch.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/sam-s10s/bs-bingo/internal/log"
	"github.com/sam-s10s/bs-bingo/pkg/display"
	"github.com/sam-s10s/bs-bingo/pkg/game"
	"github.com/sam-s10s/bs-bingo/pkg/tools"
	"github.com/sam-s10s/bs-bingo/pkg/transcript"
)

// Options tune the server.
type Options struct {
	// BaseURL is the externally reachable address, used for the QR code
	// and the board URL returned on session creation.
	BaseURL string

	// RateLimitRPS is the per-client request budget. Zero disables
	// rate limiting.
	RateLimitRPS   int
	RateLimitBurst int
}

// sessionRuntime bundles everything serving one game session.
type sessionRuntime struct {
	sess   *game.Session
	board  *display.Board
	reg    *tools.Registry
	finder *transcript.Finder
}

// Server is the bingo host HTTP/websocket server.
type Server struct {
	app     *fiber.App
	manager *game.Manager
	opts    Options
	limiter *ipLimiter

	mu       sync.RWMutex
	runtimes map[string]*sessionRuntime
}

// NewServer creates a server around the session manager.
func NewServer(manager *game.Manager, opts Options) *Server {
	s := &Server{
		manager:  manager,
		opts:     opts,
		runtimes: make(map[string]*sessionRuntime),
	}
	if opts.RateLimitRPS > 0 {
		s.limiter = newIPLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Buzzword Bingo Host",
		DisableStartupMessage: true,
	})

	app.Use(cors.New())
	if s.limiter != nil {
		app.Use(s.rateLimit())
	}

	api := app.Group("/api")
	api.Post("/sessions", s.handleCreateSession)
	api.Get("/sessions/:id", s.handleGetSession)
	api.Get("/sessions/:id/tools", s.handleListTools)
	api.Post("/sessions/:id/tools/:name", s.handleToolCall)
	api.Post("/sessions/:id/transcript", s.handleTranscript)
	api.Get("/sessions/:id/qr", s.handleQR)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/board/:id", websocket.New(s.handleBoardWS))

	s.app = app
	return s
}

// Listen starts serving on addr. It blocks until shutdown.
func (s *Server) Listen(addr string) error {
	log.Info("bingo host listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// createRuntime spins up a new session with its board channel, tool
// registry, and transcript finder.
func (s *Server) createRuntime() *sessionRuntime {
	board := display.New("board")
	sess := s.manager.Create(game.WithNotifier(board))

	rt := &sessionRuntime{
		sess:   sess,
		board:  board,
		reg:    tools.ForSession(sess),
		finder: transcript.NewFinder(sess, board),
	}
	go board.Run()

	s.mu.Lock()
	s.runtimes[sess.ID()] = rt
	s.mu.Unlock()

	log.Info("session created", "session_id", sess.ID())
	return rt
}

func (s *Server) runtime(id string) (*sessionRuntime, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rt, ok := s.runtimes[id]
	return rt, ok
}
