// Package list implements the public HTTP handler for upcoming events.
package list

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

// Service describes the event business logic the handler needs.
type Service interface {
	ListUpcoming(ctx context.Context) ([]*models.Event, error)
}

// Handler handles requests for the events listing.
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
// @Summary Upcoming events
// @Description Returns all events dated now or later, ascending by date.
// @Tags Events
// @Produce  json
// @Success 200 {object} map[string]any "List of events"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	events, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load events"))
		return
	}
	if events == nil {
		events = []*models.Event{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"events": events,
	}))
}
