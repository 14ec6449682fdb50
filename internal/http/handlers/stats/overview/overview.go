// Package overview implements the public HTTP handler for the statistics
// overview.
package overview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
	"github.com/campusdk/campusportalen/internal/models"
)

// Service describes the stats business logic the handler needs.
type Service interface {
	Overview(ctx context.Context) (*models.Stats, error)
}

// Handler handles requests for the statistics overview.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a new Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Statistics overview
// @Description Returns portions sold, CO2 saved and waste saved.
// @Tags Stats
// @Produce  json
// @Success 200 {object} models.Stats "The aggregated numbers"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.overview"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Overview(r.Context())
	if err != nil {
		log.Error("failed to compute stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.Truncated(err)))
		return
	}

	render.JSON(w, r, response.OKWithData(stats))
}
