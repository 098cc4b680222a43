package triage

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/asclepius/asclepius/internal/domain/intake"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/echo", h.Echo)
	api.POST("/diagnose", h.Diagnose)
	api.GET("/history", h.History)
	api.GET("/history/:id", h.HistoryEntry)
	api.DELETE("/history", h.ClearHistory)
}

// EchoResponse mirrors back what the server understood from a submission.
type EchoResponse struct {
	ReceivedSymptoms string `json:"received_symptoms"`
	ReceivedDuration string `json:"received_duration,omitempty"`
	ReceivedSeverity *int   `json:"received_severity,omitempty"`
	Message          string `json:"message"`
}

// validationErrorResponse is the 422 body for a rejected report. It names
// the offending field, the rule kind, and the heuristic that was violated.
type validationErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Details []*intake.ValidationError `json:"details"`
	Path    string                    `json:"path"`
}

// Echo accepts a symptom report and reflects it back without validation
// beyond JSON binding. Useful for client integration testing.
func (h *Handler) Echo(c echo.Context) error {
	var report intake.SymptomReport
	if err := c.Bind(&report); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	preview := report.Symptoms
	if runes := []rune(preview); len(runes) > 50 {
		preview = string(runes[:50])
	}
	return c.JSON(http.StatusOK, EchoResponse{
		ReceivedSymptoms: report.Symptoms,
		ReceivedDuration: report.Duration,
		ReceivedSeverity: report.Severity,
		Message:          fmt.Sprintf("Received your symptoms: %s...", preview),
	})
}

// Diagnose validates a report, scores and classifies it, and records the
// outcome in the diagnosis history.
func (h *Handler) Diagnose(c echo.Context) error {
	var report intake.SymptomReport
	if err := c.Bind(&report); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Diagnose(c.Request().Context(), &report)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, validationErrorResponse{
				Error:   "Validation Error",
				Message: "Invalid input data provided",
				Details: []*intake.ValidationError{verr},
				Path:    c.Request().URL.Path,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record diagnosis")
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) History(c echo.Context) error {
	entries, err := h.svc.History(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list history")
	}
	if entries == nil {
		entries = []*HistoryEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) HistoryEntry(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	entry, err := h.svc.HistoryEntry(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "history entry not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load history entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// ClearHistory discards the whole diagnosis log. Idempotent.
func (h *Handler) ClearHistory(c echo.Context) error {
	if err := h.svc.ClearHistory(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear history")
	}
	return c.NoContent(http.StatusNoContent)
}
