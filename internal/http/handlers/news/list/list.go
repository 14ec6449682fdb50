// Package list implements the public HTTP handler for the news feed.
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

// Service describes the news business logic the handler needs.
type Service interface {
	List(ctx context.Context) ([]*models.News, error)
}

// Handler handles requests for the news feed.
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
// @Summary News feed
// @Description Returns the newest posts, at most 20, newest first.
// @Tags News
// @Produce  json
// @Success 200 {object} map[string]any "List of news posts"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /news [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.news.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list news", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load news"))
		return
	}
	if items == nil {
		items = []*models.News{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"news": items,
	}))
}
