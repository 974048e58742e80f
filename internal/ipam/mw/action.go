// Package mw wraps HTTP handlers so they can return a payload and a
// typed response instead of writing to the ResponseWriter directly.
package mw

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// Response interface
type Response interface {
	Status() int
	Err() error

	// header getter
	Header() http.Header
	// header setter
	WithHeader(k, v string) Response
}

// Action is the business logic of a handler
type Action func(r *http.Request) (interface{}, Response)

// AsHandlerFunc is a helper wrapper to make implementing handlers easier
func AsHandlerFunc(a Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			_, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
		}()

		object, result := a(r)

		w.Header().Set("Content-Type", "application/json")

		if result == nil {
			w.WriteHeader(http.StatusOK)
		} else {
			h := result.Header()
			for k := range h {
				for _, v := range h.Values(k) {
					w.Header().Add(k, v)
				}
			}

			w.WriteHeader(result.Status())
			if result.Status() == http.StatusNoContent {
				return
			}
			if err := result.Err(); err != nil {
				object = asAPIError(err, result.Status())
			}
		}

		if err := json.NewEncoder(w).Encode(object); err != nil {
			log.Error().Err(err).Msg("failed to encode return object")
		}
	}
}

// asAPIError keeps structured API errors intact on the wire and wraps
// everything else into one using the response status.
func asAPIError(err error, status int) *types.Error {
	var apiErr *types.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &types.Error{Code: codeForStatus(status), Message: err.Error()}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return types.CodeInvalidParameters
	case http.StatusNotFound:
		return types.CodeResourceNotFound
	case http.StatusPreconditionFailed:
		return types.CodePreconditionFailed
	case http.StatusForbidden:
		return types.CodeNotAuthorized
	case http.StatusServiceUnavailable:
		return types.CodeStoreUnavailable
	default:
		return types.CodeInternalError
	}
}

type genericResponse struct {
	status int
	err    error
	header http.Header
}

func (r genericResponse) Status() int {
	return r.status
}

func (r genericResponse) Err() error {
	return r.err
}

func (r genericResponse) Header() http.Header {
	if r.header == nil {
		r.header = http.Header{}
	}
	return r.header
}

func (r genericResponse) WithHeader(k, v string) Response {
	if r.header == nil {
		r.header = http.Header{}
	}

	r.header.Add(k, v)
	return r
}

// Ok return a ok response
func Ok() Response {
	return genericResponse{status: http.StatusOK}
}

// Created returns a created response
func Created() Response {
	return genericResponse{status: http.StatusCreated}
}

// NoContent returns an empty response
func NoContent() Response {
	return genericResponse{status: http.StatusNoContent}
}

func genError(err error, code int) Response {
	if err == nil {
		err = fmt.Errorf("no message")
	}

	return genericResponse{status: code, err: err}
}

// BadRequest result
func BadRequest(err error) Response {
	return genError(err, http.StatusBadRequest)
}

// NotFound response
func NotFound(err error) Response {
	return genError(err, http.StatusNotFound)
}

// PreconditionFailed response
func PreconditionFailed(err error) Response {
	return genError(err, http.StatusPreconditionFailed)
}

// Conflict response
func Conflict(err error) Response {
	return genError(err, http.StatusConflict)
}

// UnprocessableEntity response
func UnprocessableEntity(err error) Response {
	return genError(err, http.StatusUnprocessableEntity)
}

// Forbidden response
func Forbidden(err error) Response {
	return genError(err, http.StatusForbidden)
}

// Unavailable response
func Unavailable(err error) Response {
	return genError(err, http.StatusServiceUnavailable)
}

// Error internal server error response
func Error(err error) Response {
	return genError(err, http.StatusInternalServerError)
}

// ApiError maps a structured API error to its response status.
func ApiError(err *types.Error) Response {
	return genericResponse{status: err.HTTPStatus(), err: err}
}
