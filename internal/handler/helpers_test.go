package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/i18n"
)

func newTestItemHandlers(t *testing.T) *ItemHandlers {
	t.Helper()
	InitValidator()
	bundle, err := i18n.LoadEmbedded(i18n.DefaultOptions())
	require.NoError(t, err)
	return NewItemHandlers(bundle, nil, "en-US")
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParams attaches chi route parameters to req
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type itemResponse struct {
	Message string   `json:"message"`
	Data    ItemView `json:"data"`
}

type itemsResponse struct {
	Message string     `json:"message"`
	Data    []ItemView `json:"data"`
}
