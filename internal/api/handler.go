package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/optimisticbyte/sms-expense-engine/internal/budget"
	"github.com/optimisticbyte/sms-expense-engine/internal/models"
	"github.com/optimisticbyte/sms-expense-engine/internal/parser"
)

const version = "1.0.0"

var engine = parser.New()

// ParseRequest is the JSON body for /api/parse: a batch of raw messages.
type ParseRequest struct {
	Messages []models.RawMessage `json:"messages"`
}

// ParseResponse is the JSON response from /api/parse.
type ParseResponse struct {
	Success       bool                 `json:"success"`
	Error         string               `json:"error,omitempty"`
	Transactions  []models.Transaction `json:"transactions"`
	Parsed        int                  `json:"parsed"`
	Rejected      int                  `json:"rejected"`
	RejectReasons map[string]int       `json:"rejectReasons,omitempty"`
	Version       string               `json:"version,omitempty"`
}

// EvaluateRequest is the JSON body for /api/evaluate.
type EvaluateRequest struct {
	Limits       []models.SpendingLimit `json:"limits"`
	Transactions []models.Transaction   `json:"transactions"`
}

// EvaluateResponse is the JSON response from /api/evaluate.
type EvaluateResponse struct {
	Success  bool                 `json:"success"`
	Error    string               `json:"error,omitempty"`
	Statuses []models.LimitStatus `json:"statuses"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp(log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sms-expense-engine",
		DisableStartupMessage: true,
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	})

	app.Get("/api/health", HandleHealth)
	app.Post("/api/parse", HandleParse)
	app.Post("/api/evaluate", HandleEvaluate)
	return app
}

// HandleHealth reports liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
		"engine":  "fiber",
	})
}

// HandleParse runs a batch of raw messages through the extraction
// pipeline. Rejections are not errors; the response carries per-reason
// counts so callers can see why messages were dropped.
func HandleParse(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ParseResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ParseResponse{
			Error: "no messages provided",
		})
	}

	resp := ParseResponse{
		Success:       true,
		Transactions:  []models.Transaction{},
		RejectReasons: map[string]int{},
		Version:       version,
	}
	for _, msg := range req.Messages {
		res := engine.ParseMessage(msg)
		if res.Rejected() {
			resp.Rejected++
			resp.RejectReasons[string(res.Reason)]++
			continue
		}
		resp.Parsed++
		resp.Transactions = append(resp.Transactions, *res.Transaction)
	}
	if len(resp.RejectReasons) == 0 {
		resp.RejectReasons = nil
	}

	return c.JSON(resp)
}

// HandleEvaluate computes limit statuses for the supplied limits and
// transactions. Stateless: the caller owns both collections.
func HandleEvaluate(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(EvaluateResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	return c.JSON(EvaluateResponse{
		Success:  true,
		Statuses: budget.Evaluate(req.Limits, req.Transactions),
	})
}
