// Package apihandler wires a Scanner into fiber HTTP routes. It mirrors the
// handler/pipeline split used elsewhere in the pack: handlers stay thin,
// logging and translating errors to status codes, while the scan itself is
// delegated entirely to pkg/dlp.
package apihandler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/sentineldlp/gateway/pkg/dlp"
)

// Handler holds the dependencies every route needs.
type Handler struct {
	scanner            *dlp.Scanner
	logger             *logrus.Logger
	maxPromptSizeBytes int
}

// New builds a Handler. maxPromptSizeBytes governs request-side validation;
// it should match the Config the Scanner was itself built from.
func New(scanner *dlp.Scanner, logger *logrus.Logger, maxPromptSizeBytes int) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{scanner: scanner, logger: logger, maxPromptSizeBytes: maxPromptSizeBytes}
}

// Scan handles POST /v1/scan: bind a dlp.ScanRequest, validate it, run it
// through the pipeline, and return the wire response.
func (h *Handler) Scan(c fiber.Ctx) error {
	var req dlp.ScanRequest
	if err := c.Bind().Body(&req); err != nil {
		h.logger.WithError(err).Warn("malformed scan request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}

	if err := req.Validate(h.maxPromptSizeBytes); err != nil {
		h.logger.WithError(err).Warn("scan request failed validation")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := h.scanner.Scan(req)

	h.logger.WithFields(logrus.Fields{
		"request_id": resp.RequestID,
		"action":     resp.Action,
		"risk_score": resp.RiskScore,
		"latency_ms": resp.LatencyMs,
	}).Info("scan completed")

	return c.JSON(resp)
}

// Health handles GET /health: a liveness probe with no dependency checks,
// since the scanner holds no external connections of its own.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
