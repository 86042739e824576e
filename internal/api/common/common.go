// Package common provides shared HTTP utility functions for API handlers.
package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// MaxBodyBytes bounds the size of a request body
const MaxBodyBytes = 4 << 20

// MessageTypeError is the message type of every error message written by the API
const MessageTypeError = "Error"

// Message is one entry of an error result
type Message struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code"`
	CorrelationID string `json:"correlationId"`
	Timestamp     string `json:"timestamp"`
}

// ErrorResult is the body of every error response
type ErrorResult struct {
	Messages []Message `json:"messages"`
}

// PagingMetadata carries the cursor of the next page. The cursor is omitted on the last page.
type PagingMetadata struct {
	Cursor string `json:"cursor,omitempty"`
}

// PagedResult is the body of every list response
type PagedResult[T any] struct {
	PagingMetadata PagingMetadata `json:"paging_metadata"`
	Result         []T            `json:"result"`
}

// NewPagedResult converts a service page into its response body
func NewPagedResult[T any](page *service.Page[T]) PagedResult[T] {
	result := PagedResult[T]{Result: page.Items}
	if result.Result == nil {
		result.Result = []T{}
	}
	result.PagingMetadata.Cursor = page.NextCursor
	return result
}

// WriteJSONResponse writes a JSON response with the given data
func WriteJSONResponse(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteErrorResponse writes a standardized error response with the given status
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	correlationID := uuid.NewString()
	slog.DebugContext(r.Context(), "Request failed",
		"status", statusCode,
		"message", message,
		"correlation_id", correlationID,
		"request_id", middleware.GetReqID(r.Context()))

	WriteJSONResponse(w, ErrorResult{
		Messages: []Message{{
			MessageType:   MessageTypeError,
			Text:          message,
			Code:          strconv.Itoa(statusCode),
			CorrelationID: correlationID,
			Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		}},
	}, statusCode)
}

// WriteServiceError writes the response for an error returned by the registry service.
// Storage failures are logged and reported without their cause.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Registry operation failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		message = http.StatusText(status)
	}
	WriteErrorResponse(w, r, message, status)
}

// StatusForError maps an error to the HTTP status reporting it
func StatusForError(err error) int {
	switch service.KindOf(err) {
	case service.KindInvalidArgument:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSONBody decodes the request body into dst. An empty, oversized or malformed
// body is reported as an invalid argument.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return service.NewInvalidArgumentError("request body exceeds %d bytes", maxBytesErr.Limit)
		}
		return service.NewInvalidArgumentError("invalid request body: %v", err)
	}
	return nil
}
