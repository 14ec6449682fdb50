// Package app wires the portal together: store, cache, services, router
// and HTTP server.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	loginhandler "github.com/campusdk/campusportalen/internal/http/handlers/auth/login"
	seedhandler "github.com/campusdk/campusportalen/internal/http/handlers/dev/seed"
	eventcreate "github.com/campusdk/campusportalen/internal/http/handlers/event/create"
	eventlist "github.com/campusdk/campusportalen/internal/http/handlers/event/list"
	eventsignup "github.com/campusdk/campusportalen/internal/http/handlers/event/signup"
	eventsignups "github.com/campusdk/campusportalen/internal/http/handlers/event/signups"
	failoverhandler "github.com/campusdk/campusportalen/internal/http/handlers/failover"
	healthhandler "github.com/campusdk/campusportalen/internal/http/handlers/health"
	mealcreate "github.com/campusdk/campusportalen/internal/http/handlers/meal/create"
	mealsurplus "github.com/campusdk/campusportalen/internal/http/handlers/meal/surplus"
	mealtoday "github.com/campusdk/campusportalen/internal/http/handlers/meal/today"
	newscreate "github.com/campusdk/campusportalen/internal/http/handlers/news/create"
	newslist "github.com/campusdk/campusportalen/internal/http/handlers/news/list"
	ordercreate "github.com/campusdk/campusportalen/internal/http/handlers/order/create"
	statsoverview "github.com/campusdk/campusportalen/internal/http/handlers/stats/overview"
	"github.com/campusdk/campusportalen/internal/http/middlewarectx"
	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/jwt"
	authservice "github.com/campusdk/campusportalen/internal/services/auth"
	eventservice "github.com/campusdk/campusportalen/internal/services/event"
	mealservice "github.com/campusdk/campusportalen/internal/services/meal"
	newsservice "github.com/campusdk/campusportalen/internal/services/news"
	orderservice "github.com/campusdk/campusportalen/internal/services/order"
	statsservice "github.com/campusdk/campusportalen/internal/services/stats"
	"github.com/campusdk/campusportalen/internal/storage/repository"
)

// RegisterRoutes registers every route of the portal.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	db *repository.Storage,
	authService *authservice.AuthService,
	mealService *mealservice.MealService,
	orderService *orderservice.OrderService,
	eventService *eventservice.EventService,
	newsService *newsservice.NewsService,
	statsService *statsservice.StatsService,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OKWithData(map[string]any{
			"message": "Campusportalen backend kører",
		}))
	})

	// Public endpoints
	r.Post("/auth/login", loginhandler.New(logger, authService).ServeHTTP)
	r.Get("/meals/today", mealtoday.New(logger, mealService).ServeHTTP)
	r.Get("/meals/surplus", mealsurplus.New(logger, mealService).ServeHTTP)
	r.Get("/events", eventlist.New(logger, eventService).ServeHTTP)
	r.Get("/news", newslist.New(logger, newsService).ServeHTTP)
	r.Get("/stats", statsoverview.New(logger, statsService).ServeHTTP)
	r.Get("/health", healthhandler.New(logger, db).ServeHTTP)
	r.Get("/failover-test", failoverhandler.New(logger).ServeHTTP)
	r.Post("/dev/seed", seedhandler.New(logger, authService).ServeHTTP)

	// Authenticated group
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
		r.Post("/events/signup", eventsignup.New(logger, eventService).ServeHTTP)

		// Admin group
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireAdmin(logger))

			r.Post("/admin/meals", mealcreate.New(logger, mealService).ServeHTTP)
			r.Post("/admin/events", eventcreate.New(logger, eventService).ServeHTTP)
			r.Get("/admin/events/{id}/signups", eventsignups.New(logger, eventService).ServeHTTP)
			r.Post("/admin/news", newscreate.New(logger, newsService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
