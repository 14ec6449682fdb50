// Package signup implements the HTTP handler for signing up to an event.
//
// The operation is idempotent: a repeat signup answers with an
// already_signed status instead of creating a duplicate.
package signup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/campusdk/campusportalen/internal/http/middlewarectx"
	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
)

// Request holds the signup payload.
type Request struct {
	EventUID string `json:"event_id" validate:"required,uuid"`
}

// Service describes the event business logic the handler needs.
type Service interface {
	SignUp(ctx context.Context, eventUID, userUID string) (uid string, alreadySigned bool, err error)
}

// Handler handles event signup requests.
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
// @Summary Sign up for an event
// @Description Records a signup for the authenticated user. Repeating the call reports already_signed.
// @Tags Events
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Event reference"
// @Success 200 {object} map[string]any "The signup id or already_signed status"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthenticated"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /events/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	uid, alreadySigned, err := h.service.SignUp(r.Context(), req.EventUID, userUID)
	if err != nil {
		log.Error("failed to sign up", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not sign up"))
		return
	}

	if alreadySigned {
		log.Info("repeat signup", slog.String("event_uid", req.EventUID))
		render.JSON(w, r, response.OKWithData(map[string]any{
			"status": "already_signed",
		}))
		return
	}

	log.Info("signup created", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": uid,
	}))
}
