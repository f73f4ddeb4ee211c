// Package response defines the closed set of outcomes every endpoint answers
// with and their fixed JSON shape.
package response

import (
	"errors"
	"net/http"

	"smt-backend/internal/entities"
)

// Kind classifies an outcome.
type Kind int

const (
	Success Kind = iota
	Created
	NotAuthorized
	Conflict
	NotFound
	UnprocessableInput
	InternalFailure
)

var kinds = [...]struct {
	status int
	name   string
}{
	Success:            {http.StatusOK, "success"},
	Created:            {http.StatusCreated, "created"},
	NotAuthorized:      {http.StatusUnauthorized, "not_authorized"},
	Conflict:           {http.StatusConflict, "conflict"},
	NotFound:           {http.StatusNotFound, "not_found"},
	UnprocessableInput: {http.StatusUnprocessableEntity, "unprocessable_input"},
	InternalFailure:    {http.StatusInternalServerError, "internal_failure"},
}

// StatusCode returns the HTTP status of k.
func (k Kind) StatusCode() int {
	if k < 0 || int(k) >= len(kinds) {
		return http.StatusInternalServerError
	}
	return kinds[k].status
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[InternalFailure].name
	}
	return kinds[k].name
}

// Envelope is the JSON body of every response.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result is one outcome: a kind plus the payload or the error message.
type Result struct {
	Kind    Kind
	Payload any
	Message string
}

// OK wraps a payload read or updated successfully.
func OK(payload any) Result {
	return Result{Kind: Success, Payload: payload}
}

// New wraps a freshly created payload.
func New(payload any) Result {
	return Result{Kind: Created, Payload: payload}
}

// Fail builds an error outcome.
func Fail(kind Kind, msg string) Result {
	return Result{Kind: kind, Message: msg}
}

// FromError classifies err. Unclassified errors become InternalFailure with a
// generic message so store details never reach the client.
func FromError(err error) Result {
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		return Fail(UnprocessableInput, err.Error())
	case errors.Is(err, entities.ErrNotAuthorized):
		return Fail(NotAuthorized, "unknown email")
	case errors.Is(err, entities.ErrNotFound):
		return Fail(NotFound, err.Error())
	case errors.Is(err, entities.ErrConflict):
		return Fail(Conflict, err.Error())
	default:
		return Fail(InternalFailure, "internal error")
	}
}

// Envelope renders r in its wire shape.
func (r Result) Envelope() Envelope {
	return Envelope{
		Status: r.Kind.String(),
		Data:   r.Payload,
		Error:  r.Message,
	}
}
