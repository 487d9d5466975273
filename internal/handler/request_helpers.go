package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req NewItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "New item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeRecords decodes a body holding either one stored record or an array
// of them. single reports which form was sent so the response can mirror it.
// If this function returns an error, the HTTP response has already been written.
func DecodeRecords(r *http.Request, w http.ResponseWriter, actionName string) (records []domain.ItemRecord, single bool, err error) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return nil, false, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &records)
	} else {
		var rec domain.ItemRecord
		if err = json.Unmarshal(trimmed, &rec); err == nil {
			records, single = []domain.ItemRecord{rec}, true
		}
	}
	if err != nil {
		log.Error(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, false, err
	}

	if len(records) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyItemBatch)
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyItemBatch)
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName), "items", len(records), "single", single)
	return records, single, nil
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	tag := GetOptionalQueryParam(r, "type", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBoolQueryParam parses an optional boolean query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue bool) (value bool, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgInvalidQueryParam, paramName), "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return false, false
	}
	return value, true
}
