// Package surplus implements the HTTP handler for today's surplus offers.
package surplus

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
	Surplus(ctx context.Context) ([]*models.Meal, error)
}

// Handler handles requests for the surplus listing.
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
// @Summary Today's surplus offers
// @Description Returns all meals flagged as surplus offers for today.
// @Tags Meals
// @Produce  json
// @Success 200 {object} map[string]any "List of surplus meals"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /meals/surplus [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.surplus"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meals, err := h.service.Surplus(r.Context())
	if err != nil {
		log.Error("failed to list surplus meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load surplus meals"))
		return
	}
	if meals == nil {
		meals = []*models.Meal{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"meals": meals,
	}))
}
