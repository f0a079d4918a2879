package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// Error is the JSON body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors onto HTTP status codes. The mapping is
// driven entirely by the error taxonomy sentinels; handlers never pick status
// codes by hand. Unclassified errors become opaque 500s so internal detail
// never leaks to clients.
func respondError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}
