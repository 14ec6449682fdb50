// Package failover implements the illustrative failover endpoint: it
// provokes a failure on purpose, catches it and answers with a fallback
// flag instead of propagating.
package failover

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/sl"
)

// Handler handles failover-test requests.
type Handler struct {
	log *slog.Logger
}

// New creates a new Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// breakSomething always fails. It stands in for a dependency the frontend
// exercises its fallback path against.
func breakSomething() error {
	return errors.New("induced failure")
}

// ServeHTTP godoc
// @Summary Failover test
// @Description Provokes a failure and reports the fallback flag.
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]any "Fallback report"
// @Router /failover-test [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.failover"

	if err := breakSomething(); err != nil {
		h.log.Info("failover test tripped", slog.String("op", op), sl.Err(err))
		render.JSON(w, r, response.OKWithData(map[string]any{
			"ok":       false,
			"fallback": true,
		}))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"ok": true,
	}))
}
