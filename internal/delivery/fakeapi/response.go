package fakeapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgForbidden  = "You do not have permission to perform this action."
	msgInvalidPg  = "Invalid page."
	msgBadRequest = "Malformed request."
)

func detail(c echo.Context, status int, message string) error {
	return c.JSON(status, domainerrors.Payload{Detail: message})
}

func invalid(c echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusBadRequest, domainerrors.Payload{Fields: fields})
}

func notFound(c echo.Context, model string) error {
	return detail(c, http.StatusNotFound, "No "+model+" matches the given query.")
}

// handleHTTPError renders errors that escaped a handler in the DRF shape.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		_ = detail(c, httpErr.Code, msg)

		return
	}

	s.log(c).Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = detail(c, http.StatusInternalServerError, "A server error occurred.")
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil && id > 0
}

// paginate renders one page of items the way the backend's pagination class does.
func paginate[T any](c echo.Context, items []T) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return detail(c, http.StatusNotFound, msgInvalidPg)
		}
		page = n
	}

	start := (page - 1) * entity.PageSize
	if start >= len(items) && page != 1 {
		return detail(c, http.StatusNotFound, msgInvalidPg)
	}
	end := min(start+entity.PageSize, len(items))

	return c.JSON(http.StatusOK, entity.Page[T]{
		Results:     append([]T{}, items[start:end]...),
		Count:       len(items),
		CurrentPage: page,
	})
}
