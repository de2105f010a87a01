package subscribers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the public subscribe endpoint and the ops dashboard
// API.
type Handler struct {
	store            *Store
	counts           *CountCache
	subscribeLimiter *rateLimiter
}

// NewHandler creates a subscriber handler. The subscribe endpoint is
// rate-limited to 5 requests per IP per minute.
func NewHandler(store *Store, counts *CountCache) *Handler {
	return &Handler{
		store:            store,
		counts:           counts,
		subscribeLimiter: newRateLimiter(5, time.Minute),
	}
}

// SubscribeRequest is the body of the public subscribe endpoint. The
// Website field is a honeypot: humans never see it, bots fill it.
type SubscribeRequest struct {
	Email   string `json:"email" form:"email"`
	Source  string `json:"source" form:"source"`
	Website string `json:"website" form:"website"`
}

const maxSourceLen = 64

// Subscribe handles a newsletter signup from the public site.
func (h *Handler) Subscribe(c echo.Context) error {
	if !h.subscribeLimiter.allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
	}
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Website != "" {
		// honeypot hit, report success and store nothing
		return c.JSON(http.StatusAccepted, map[string]string{"status": StatusPending})
	}
	source := req.Source
	if len(source) > maxSourceLen {
		source = source[:maxSourceLen]
	}
	sub, err := h.store.Subscribe(req.Email, source)
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email address"})
		}
		c.Logger().Errorf("subscribe: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	h.counts.Invalidate()
	return c.JSON(http.StatusAccepted, map[string]string{"status": sub.Status})
}

// List returns subscribers as JSON for the ops dashboard, filtered by
// the status, q, and limit query parameters.
func (h *Handler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid limit"})
		}
		limit = n
	}
	status := c.QueryParam("status")
	if status != "" && !ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}
	subs, err := h.store.List(Filter{Status: status, Query: c.QueryParam("q"), Limit: limit})
	if err != nil {
		c.Logger().Errorf("list subscribers: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if subs == nil {
		subs = []Subscriber{}
	}
	return c.JSON(http.StatusOK, subs)
}

// StatusRequest is the body of the ops status-change endpoint.
type StatusRequest struct {
	Status string `json:"status" form:"status"`
}

// UpdateStatus sets a subscriber's status from the ops dashboard.
func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if !ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}
	sub, err := h.store.UpdateStatus(id, req.Status)
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		c.Logger().Errorf("update subscriber %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	h.counts.Invalidate()
	return c.JSON(http.StatusOK, sub)
}

// Delete removes a subscriber row from the ops dashboard.
func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	if err := h.store.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		c.Logger().Errorf("delete subscriber %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	h.counts.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

// ExportCSV streams the subscriber list as a CSV download, honoring the
// same status and q filters as List.
func (h *Handler) ExportCSV(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !ValidStatus(status) {
		return c.String(http.StatusBadRequest, "invalid status")
	}
	subs, err := h.store.List(Filter{Status: status, Query: c.QueryParam("q"), Limit: maxListLimit})
	if err != nil {
		c.Logger().Errorf("export subscribers: %v", err)
		return c.String(http.StatusInternalServerError, "internal server error")
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set("Content-Disposition", `attachment; filename="subscribers.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"id", "email", "status", "source", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, sub := range subs {
		record := []string{
			strconv.FormatInt(sub.ID, 10),
			sub.Email,
			sub.Status,
			sub.Source,
			sub.CreatedAt.UTC().Format(time.RFC3339),
			sub.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// RegisterRoutes registers the public subscribe endpoint on e and the
// dashboard API on the ops group, whose auth middleware the caller
// owns.
func (h *Handler) RegisterRoutes(e *echo.Echo, ops *echo.Group) {
	e.POST("/api/subscribe", h.Subscribe)

	ops.GET("/api/subscribers", h.List)
	ops.POST("/api/subscribers/:id/status", h.UpdateStatus)
	ops.DELETE("/api/subscribers/:id", h.Delete)
	ops.GET("/export.csv", h.ExportCSV)
}
