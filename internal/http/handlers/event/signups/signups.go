// Package signups implements the admin HTTP handler listing the signups
// of an event.
package signups

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
	"github.com/campusdk/campusportalen/internal/models"
)

// Service describes the event business logic the handler needs.
type Service interface {
	ListSignups(ctx context.Context, eventUID string) ([]*models.EventSignup, error)
}

// Handler handles admin signup listing requests.
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
// @Summary List event signups
// @Description Returns all signups of the given event. Admin only.
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]any "List of signups"
// @Failure 400 {object} response.ErrorResponse "Missing event id"
// @Failure 401 {object} response.ErrorResponse "Unauthenticated"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /admin/events/{id}/signups [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.signups"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	eventUID := chi.URLParam(r, "id")
	if eventUID == "" {
		log.Error("missing event id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing event id"))
		return
	}

	signups, err := h.service.ListSignups(r.Context(), eventUID)
	if err != nil {
		log.Error("failed to list signups", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load signups"))
		return
	}
	if signups == nil {
		signups = []*models.EventSignup{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"signups": signups,
	}))
}
