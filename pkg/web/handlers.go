package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/sam-s10s/bs-bingo/internal/log"
	"github.com/sam-s10s/bs-bingo/pkg/game"
	"github.com/sam-s10s/bs-bingo/pkg/tools"
	"github.com/sam-s10s/bs-bingo/pkg/transcript"
)

// errorCode maps engine failures to stable wire codes the agent can switch
// on.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrInvalidPhase):
		return fiber.StatusConflict, "invalid_phase"
	case errors.Is(err, game.ErrDuplicatePlayer):
		return fiber.StatusConflict, "duplicate_player"
	case errors.Is(err, game.ErrNoPlayers):
		return fiber.StatusConflict, "no_players"
	case errors.Is(err, game.ErrInsufficientPool):
		return fiber.StatusConflict, "insufficient_pool"
	case errors.Is(err, game.ErrUnknownPlayer):
		return fiber.StatusNotFound, "unknown_player"
	case errors.Is(err, game.ErrUnknownWord):
		return fiber.StatusNotFound, "unknown_word"
	default:
		// Remaining failures are malformed tool arguments.
		return fiber.StatusBadRequest, "bad_request"
	}
}

// handleCreateSession starts a new isolated game session.
func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	rt := s.createRuntime()
	id := rt.sess.ID()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": id,
		"board_url":  fmt.Sprintf("%s/ws/board/%s", s.opts.BaseURL, id),
	})
}

// handleGetSession returns the display-facing snapshot.
func (s *Server) handleGetSession(c *fiber.Ctx) error {
	rt, ok := s.runtime(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_session"})
	}
	return c.JSON(rt.sess.Snapshot())
}

// handleListTools returns the tool schemas for a session.
func (s *Server) handleListTools(c *fiber.Ctx) error {
	rt, ok := s.runtime(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_session"})
	}
	return c.JSON(rt.reg.List())
}

// toolCallRequest is the body for invoking a tool.
type toolCallRequest struct {
	Args map[string]any `json:"args"`
}

// handleToolCall dispatches one agent tool invocation.
func (s *Server) handleToolCall(c *fiber.Ctx) error {
	rt, ok := s.runtime(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_session"})
	}

	var req toolCallRequest
	if err := c.BodyParser(&req); err != nil {
		req.Args = make(map[string]any)
	}
	if req.Args == nil {
		req.Args = make(map[string]any)
	}

	name := c.Params("name")
	call := tools.ToolCall{
		ID:        uuid.NewString(),
		Name:      name,
		Arguments: req.Args,
	}

	res := rt.reg.Dispatch(call)
	if res.Err != nil {
		if _, known := rt.reg.Get(name); !known {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_tool"})
		}
		status, code := errorCode(res.Err)
		log.Warn("tool call failed", "session_id", rt.sess.ID(), "tool", name, "code", code, "err", res.Err)
		return c.Status(status).JSON(fiber.Map{
			"call_id": res.CallID,
			"error":   code,
			"detail":  res.Err.Error(),
		})
	}

	log.Debug("tool call ok", "session_id", rt.sess.ID(), "tool", name)
	c.Set("Content-Type", fiber.MIMEApplicationJSON)
	return c.SendString(fmt.Sprintf(`{"call_id":%q,"result":%s}`, res.CallID, res.Result))
}

// handleTranscript feeds one utterance to the word finder.
func (s *Server) handleTranscript(c *fiber.Ctx) error {
	rt, ok := s.runtime(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_session"})
	}

	var u transcript.Utterance
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request"})
	}

	found := rt.finder.Hear(u)
	if found == nil {
		found = []string{}
	}
	return c.JSON(fiber.Map{"highlighted": found})
}

// handleQR serves a QR code pointing at the board websocket URL, so the
// grid can be pulled up on a phone.
func (s *Server) handleQR(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.runtime(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_session"})
	}

	url := fmt.Sprintf("%s/ws/board/%s", s.opts.BaseURL, id)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_error"})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// handleBoardWS attaches a display client to a session's board stream.
func (s *Server) handleBoardWS(c *websocket.Conn) {
	rt, ok := s.runtime(c.Params("id"))
	if !ok {
		c.Close()
		return
	}
	rt.board.Attach(c)
}
