// Package middlewarectx contains the HTTP middleware of the portal: the
// bearer-token authentication gate, the admin-role gate composed on top of
// it, and the request rate limiter.
//
// JWTMiddleware verifies the Authorization header and, on success, stores
// the token's identity claims in the request context for the handlers.
// Failures return HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/campusdk/campusportalen/internal/http/response"
	"github.com/campusdk/campusportalen/internal/lib/jwt"
	"github.com/campusdk/campusportalen/internal/lib/sl"
)

// Key is the type of the request context keys set by this package.
type Key string

const (
	// UserUID is the context key of the authenticated user's uid.
	UserUID Key = "user_uid"
	// Role is the context key of the authenticated user's role.
	Role Key = "role"
	// Email is the context key of the authenticated user's email.
	Email Key = "email"
	// Name is the context key of the authenticated user's display name.
	Name Key = "name"
)

// JWTMiddleware returns the authentication gate: it requires a bearer
// token in the Authorization header, verifies it with maker and puts the
// embedded identity into the request context.
//
// Expired and invalid tokens are logged apart but both answer 401; the
// client only learns that it is unauthenticated.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				if errors.Is(err, jwt.ErrExpired) {
					log.Error("token expired", sl.Err(err))
				} else {
					log.Error("invalid token", sl.Err(err))
				}
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, claims.Subject)
			ctx = context.WithValue(ctx, Role, claims.Role)
			ctx = context.WithValue(ctx, Email, claims.Email)
			ctx = context.WithValue(ctx, Name, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
