// Package seed implements the development convenience endpoint that
// creates the demo accounts when the user table is empty.
package seed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
)

// Service describes the seeding business logic.
type Service interface {
	Seed(ctx context.Context) (bool, error)
}

// Handler handles seed requests.
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
// @Summary Seed demo users
// @Description Creates the demo admin and student accounts when no users exist.
// @Tags Dev
// @Produce  json
// @Success 200 {object} map[string]any "Seeding status"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /dev/seed [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dev.seed"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	seeded, err := h.service.Seed(r.Context())
	if err != nil {
		log.Error("failed to seed users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not seed users"))
		return
	}

	if !seeded {
		render.JSON(w, r, response.OKWithData(map[string]any{
			"status": "already_seeded",
		}))
		return
	}

	log.Info("demo users seeded")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "seeded",
		"users":  []string{"admin@campus.dk / admin123", "elev@campus.dk / elev123"},
	}))
}
