// Package today implements the HTTP handler for today's special meal.
package today

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

// Service describes the meal business logic the handler needs.
type Service interface {
	TodaySpecial(ctx context.Context) (*models.Meal, error)
}

// Handler handles requests for today's special.
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
// @Summary Today's special meal
// @Description Returns the meal flagged as today's special, or null when none is set.
// @Tags Meals
// @Produce  json
// @Success 200 {object} map[string]any "The meal or null"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /meals/today [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.today"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meal, err := h.service.TodaySpecial(r.Context())
	if err != nil {
		log.Error("failed to find today's special", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load today's meal"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"meal": meal,
	}))
}
