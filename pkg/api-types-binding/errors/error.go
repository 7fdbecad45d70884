// Package errors builds echo errors whose body is an apierr.ErrorMessage.
package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

type ErrorMessageOption func(in *apierr.ErrorMessage) *apierr.ErrorMessage

func WithError(err error) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

// WithField adds messages for a field of the request body.
func WithField(field string, messages ...string) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if in.Fields == nil {
			in.Fields = map[string][]string{}
		}
		in.Fields[field] = append(in.Fields[field], messages...)
		return in
	}
}

func NewErrorMessage(code int, detail string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := apierr.ErrorMessage{Detail: detail}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func NotFound() *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found")
}

// BadRequest is for malformed requests.
//
// When err wraps apierr.ErrorMessage, its fields are carried into the response.
func BadRequest(detail string, err error) *echo.HTTPError {
	opts := []ErrorMessageOption{WithError(err)}
	if em := new(apierr.ErrorMessage); errors.As(err, em) {
		for f, msgs := range em.Fields {
			opts = append(opts, WithField(f, msgs...))
		}
	}
	return NewErrorMessage(http.StatusBadRequest, detail, opts...)
}

func Conflict(detail string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusConflict, detail, options...)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}

func Unauthorized(detail string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusUnauthorized,
		detail,
		WithError(err),
	)
}

func Forbidden(detail string) *echo.HTTPError {
	return NewErrorMessage(http.StatusForbidden, detail)
}
