// Package health implements the health endpoint: the process is up and
// the store answers a ping.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health requests.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New creates a new Handler.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

// ServeHTTP godoc
// @Summary Health check
// @Description Reports process and database health. A failing store answers degraded with a truncated error.
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]any "Health status"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("database ping failed", slog.String("op", op), sl.Err(err))
		render.JSON(w, r, response.OKWithData(map[string]any{
			"status": "degraded",
			"error":  response.Truncated(err),
		}))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
		"db":     "ok",
	}))
}
