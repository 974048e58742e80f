package types

import (
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned by the API.
const (
	CodeInvalidParameters  = "InvalidParameters"
	CodeResourceNotFound   = "ResourceNotFound"
	CodePreconditionFailed = "PreconditionFailed"
	CodeSubnetConflict     = "SubnetConflict"
	CodeInUse              = "InUseError"
	CodeNotAuthorized      = "NotAuthorized"
	CodeStoreUnavailable   = "StoreUnavailable"
	CodeInternalError      = "InternalError"
)

// Reason codes on the field errors of an InvalidParameters or InUseError.
const (
	ReasonMissing   = "missing"
	ReasonInvalid   = "invalid"
	ReasonDuplicate = "duplicate"
	ReasonUsedBy    = "usedBy"
)

// FieldError describes one invalid input field, or one referencer holding
// a resource in use.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is the wire format of every API failure. It implements error so
// managers can return it directly and the client can hand it back after
// decoding a response body.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, "; "))
}

// HTTPStatus maps the error code to its response status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidParameters, CodeInUse:
		return http.StatusUnprocessableEntity
	case CodeResourceNotFound:
		return http.StatusNotFound
	case CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case CodeSubnetConflict:
		return http.StatusConflict
	case CodeNotAuthorized:
		return http.StatusForbidden
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MissingParam builds a field error for an absent required parameter.
func MissingParam(field string) FieldError {
	return FieldError{Field: field, Code: ReasonMissing, Message: "missing parameter"}
}

// InvalidParam builds a field error for a malformed parameter.
func InvalidParam(field, message string) FieldError {
	return FieldError{Field: field, Code: ReasonInvalid, Message: message}
}

// DuplicateParam builds a field error for a value already taken.
func DuplicateParam(field, message string) FieldError {
	return FieldError{Field: field, Code: ReasonDuplicate, Message: message}
}

// UsedBy builds a field error naming one resource that blocks an operation.
func UsedBy(resource, uuid string) FieldError {
	return FieldError{
		Field:   uuid,
		Code:    ReasonUsedBy,
		Message: fmt.Sprintf("in use by %s %s", resource, uuid),
	}
}

// NewValidationError wraps one or more field errors into an
// InvalidParameters error.
func NewValidationError(fields ...FieldError) *Error {
	return &Error{
		Code:    CodeInvalidParameters,
		Message: "invalid parameters",
		Errors:  fields,
	}
}

// NewNotFound reports a missing resource, e.g. NewNotFound("network").
func NewNotFound(resource string) *Error {
	return &Error{
		Code:    CodeResourceNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewPreconditionFailed reports a stale or mismatched etag.
func NewPreconditionFailed(message string) *Error {
	return &Error{Code: CodePreconditionFailed, Message: message}
}

// NewSubnetConflict reports address space overlapping an existing network.
func NewSubnetConflict(uuid string) *Error {
	return &Error{
		Code:    CodeSubnetConflict,
		Message: fmt.Sprintf("subnet overlaps with network %s", uuid),
		Errors:  []FieldError{{Field: "subnet", Code: ReasonUsedBy, Message: fmt.Sprintf("subnet overlaps with network %s", uuid)}},
	}
}

// NewInUse reports a resource blocked by active referencers.
func NewInUse(resource string, blockers ...FieldError) *Error {
	return &Error{
		Code:    CodeInUse,
		Message: fmt.Sprintf("%s is in use", resource),
		Errors:  blockers,
	}
}

// NewNotAuthorized reports a request rejected by the authorization layer.
func NewNotAuthorized(message string) *Error {
	return &Error{Code: CodeNotAuthorized, Message: message}
}

// NewStoreUnavailable reports a storage layer failure.
func NewStoreUnavailable(err error) *Error {
	return &Error{Code: CodeStoreUnavailable, Message: err.Error()}
}

// NewInternal reports an unclassified server side failure.
func NewInternal(message string) *Error {
	return &Error{Code: CodeInternalError, Message: message}
}

// IsCode reports whether err is an API error with the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Code == code
}

// IsNotFound reports whether err is a ResourceNotFound API error.
func IsNotFound(err error) bool {
	return IsCode(err, CodeResourceNotFound)
}
