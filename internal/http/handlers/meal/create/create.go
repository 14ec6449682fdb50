// Package create implements the admin HTTP handler for publishing meals.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
	"github.com/campusdk/campusportalen/internal/models"
	mealservice "github.com/campusdk/campusportalen/internal/services/meal"
)

// Service describes the meal business logic the handler needs.
type Service interface {
	Create(ctx context.Context, req models.DummyMeal) (string, error)
}

// Handler handles admin meal creation requests.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a new Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Create a meal
// @Description Publishes a new cafeteria meal. Admin only.
// @Tags Admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyMeal true "Meal fields"
// @Success 200 {object} map[string]any "The new meal id"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON or bad day format"
// @Failure 401 {object} response.ErrorResponse "Unauthenticated"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /admin/meals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMeal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, mealservice.ErrInvalidDay) {
			log.Error("bad day format", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("day must be formatted as YYYY-MM-DD"))
			return
		}
		log.Error("failed to create meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create meal"))
		return
	}

	log.Info("meal created", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": uid,
	}))
}
