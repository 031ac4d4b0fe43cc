package users

import (
	"errors"
	"net/http"
)

// ErrNoEmptyString is the error we return when asked to hash an empty string
var ErrNoEmptyString = errors.New("can not hash an empty string")

// Error is a JSON:API error object. Values are built through the catalog
// constructors below and never mutated afterwards.
type Error struct {
	Status string  `json:"status"`
	Source *Source `json:"source,omitempty"`
	Title  string  `json:"title"`
	Detail string  `json:"detail,omitempty"`
}

// Source locates the offending part of the request document.
type Source struct {
	Pointer string `json:"pointer"`
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Title
	}
	return e.Title + ": " + e.Detail
}

// ErrorsDocument is the JSON:API failure envelope.
type ErrorsDocument struct {
	Errors []*Error `json:"errors"`
}

// BadRequest builds a 400 validation error for the given document pointer.
func BadRequest(pointer, detail string) *Error {
	return &Error{
		Status: "400",
		Title:  "Bad Request",
		Source: &Source{Pointer: pointer},
		Detail: detail,
	}
}

// NotFound builds a 404 error. The detail is deliberately the only
// information the client gets; callers must not encode why the lookup
// failed.
func NotFound(pointer, detail string) *Error {
	e := &Error{
		Status: "404",
		Title:  "Not Found",
		Detail: detail,
	}
	if pointer != "" {
		e.Source = &Source{Pointer: pointer}
	}
	return e
}

// Internal builds a 500 error with a generic detail. Whatever the
// collaborator reported stays in the logs.
func Internal() *Error {
	return &Error{
		Status: "500",
		Title:  "Unknown Internal Server Error",
		Detail: "We had a problem processing the request. Please try again later.",
	}
}

// NotAcceptable is the 406 error the media type gate responds with.
func NotAcceptable() *Error {
	return &Error{
		Status: "406",
		Title:  "Not Acceptable",
		Detail: "The client has not specified application/vnd.api+json in the accept header",
	}
}

// UnsupportedMediaType is the 415 error the media type gate responds with.
func UnsupportedMediaType() *Error {
	return &Error{
		Status: "415",
		Title:  "Unsupported Media Type",
		Detail: "The content-type header of the request is not supported, it has to be of type application/vnd.api+json",
	}
}

// errorsResult wraps one or more catalog errors into a terminal Result. The
// status is taken from the first error, mirroring the JSON:API convention of
// one status per response.
func errorsResult(errs ...*Error) *Result {
	status := http.StatusInternalServerError
	switch errs[0].Status {
	case "400":
		status = http.StatusBadRequest
	case "404":
		status = http.StatusNotFound
	case "406":
		status = http.StatusNotAcceptable
	case "415":
		status = http.StatusUnsupportedMediaType
	}
	return &Result{Status: status, Body: ErrorsDocument{Errors: errs}}
}
