package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/library"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUnsupportedItemType   = "Unsupported item type"
	ErrMsgUnsupportedOperation  = "Unsupported operation for this item type"
	ErrMsgNotArtifactError      = "Item is not an artifact"
	ErrMsgWrongVariantError     = "Item type does not match the operation"
	ErrMsgInvalidRecordError    = "Item record is invalid"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgInvalidInputError     = "Invalid input"
	ErrMsgInvalidPackError      = "Item pack is invalid"
	ErrMsgDuplicateIDError      = "Item pack contains duplicate ids"
	ErrMsgLibraryUnavailableErr = "Item library is not loaded"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Validation details are kept in the message since they describe the caller's input.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnsupportedVariant):
		return http.StatusBadRequest, withDetail(ErrMsgUnsupportedItemType, err)
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return http.StatusBadRequest, ErrMsgUnsupportedOperation
	case errors.Is(err, domain.ErrNotArtifact):
		return http.StatusBadRequest, ErrMsgNotArtifactError
	case errors.Is(err, domain.ErrWrongVariant):
		return http.StatusBadRequest, ErrMsgWrongVariantError
	case errors.Is(err, library.ErrDuplicateID):
		return http.StatusBadRequest, withDetail(ErrMsgDuplicateIDError, err)
	case errors.Is(err, library.ErrInvalidPack):
		return http.StatusBadRequest, withDetail(ErrMsgInvalidPackError, err)
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest, withDetail(ErrMsgInvalidRecordError, err)
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, withDetail(ErrMsgInvalidInputError, err)
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, library.ErrStoreNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgLibraryUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

func withDetail(message string, err error) string {
	return message + ": " + err.Error()
}
