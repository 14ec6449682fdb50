// Package create implements the HTTP handler for placing cafeteria orders.
//
// The handler requires an authenticated identity, validates the payload
// and delegates to the order service, which prices the order off the meal
// the order references.
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
	orderservice "github.com/campusdk/campusportalen/internal/services/order"
)

// Service describes the order business logic the handler needs.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyOrder) (string, error)
}

// Handler handles order creation requests.
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
// @Summary Place an order
// @Description Creates an order for the authenticated user. The total price comes from the referenced meal.
// @Tags Orders
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyOrder true "Order fields"
// @Success 200 {object} map[string]any "The new order id"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthenticated"
// @Failure 422 {object} response.ErrorResponse "Validation error or unknown meal"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyOrder
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
		if errors.Is(err, orderservice.ErrMealNotFound) {
			log.Error("order references unknown meal", slog.String("meal_uid", req.MealUID))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown meal"))
			return
		}
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create order"))
		return
	}

	log.Info("order created", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": uid,
	}))
}
