// Package create implements the admin HTTP handler for publishing events.
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

	"github.com/campusdk/campusportalen/internal/http/middlewarectx"
	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
	"github.com/campusdk/campusportalen/internal/models"
	eventservice "github.com/campusdk/campusportalen/internal/services/event"
)

// Service describes the event business logic the handler needs.
type Service interface {
	Create(ctx context.Context, createdBy string, req models.DummyEvent) (string, error)
}

// Handler handles admin event creation requests.
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
// @Summary Create an event
// @Description Publishes a new event with the caller as creator. Admin only.
// @Tags Admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyEvent true "Event fields"
// @Success 200 {object} map[string]any "The new event id"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON or bad date format"
// @Failure 401 {object} response.ErrorResponse "Unauthenticated"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /admin/events [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEvent
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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	uid, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, eventservice.ErrInvalidDate) {
			log.Error("bad date format", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("date must be formatted as RFC3339"))
			return
		}
		log.Error("failed to create event", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create event"))
		return
	}

	log.Info("event created", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": uid,
	}))
}
