package fakeapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyUserID = "user_id"

// requestID echoes the caller's X-Request-Id or generates one, and stores a
// logger carrying it in the request context.
func (s *Server) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
		ctx = deliverycontext.WithLogger(ctx, s.logger.With(slog.String("request_id", id)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (s *Server) log(c echo.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(c.Request().Context(), s.logger)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		s.log(c).LogAttrs(context.Background(), level, "HTTP Request",
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)

		return nil
	}
}

// authenticate accepts a valid access token and stores the user id on the context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return detail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return detail(c, http.StatusUnauthorized, "Authorization header must contain a Bearer token.")
		}

		claims, err := s.tokens.ValidateToken(token, service.TokenTypeAccess)
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Given token not valid for any token type")
		}

		s.db.mu.RLock()
		_, ok := s.db.users[claims.UserID]
		s.db.mu.RUnlock()
		if !ok {
			return detail(c, http.StatusUnauthorized, "User not found")
		}

		c.Set(keyUserID, claims.UserID)

		return next(c)
	}
}

func currentUser(c echo.Context) int64 {
	id, _ := c.Get(keyUserID).(int64)

	return id
}
