package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string      `json:"error,omitempty"`
	Field string       `json:"field,omitempty"`
	Kind  failure.Kind `json:"kind,omitempty"`
}

// ErrorWithData is an error that still carries the resource state, e.g. a wizard after a conflict.
type ErrorWithData[T any] struct {
	Error
	Data *T `json:"data,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), newError(err))
}

// WithErrorAndJSON sends an error response together with the current state of the resource
func WithErrorAndJSON(writer http.ResponseWriter, err error, jsonPayload interface{}) {
	response(writer, failure.GetCode(err), ErrorWithData[any]{Error: newError(err), Data: &jsonPayload})
}

func newError(err error) Error {
	errMsg := err.Error()
	res := Error{Error: &errMsg}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		res.Field = fail.Field
		res.Kind = fail.Kind
	}

	return res
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
