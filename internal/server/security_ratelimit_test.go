package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/metrics"
)

func guarded(guard *ClientGuard, apiKey string) http.Handler {
	return guard.Throttle(guard.Authenticate(apiKey)(okHandler()))
}

func requestFrom(ip, path, key string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	req.RemoteAddr = ip + ":1234"
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	return req
}

func TestClientGuard_Throttle(t *testing.T) {
	guard := NewClientGuard(GuardLimits{Window: time.Minute, Requests: 5}, nil)
	handler := guard.Throttle(okHandler())
	limited := testutil.ToFloat64(metrics.HTTPRequestsRejected.WithLabelValues(metrics.RejectReasonRateLimit))

	ip := "192.168.1.100"
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom(ip, "/test", ""))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/test", ""))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	retry, err := strconv.Atoi(rec.Header().Get(HeaderRetryAfter))
	require.NoError(t, err)
	assert.InDelta(t, 60, retry, 1)
	assert.Equal(t, limited+1, testutil.ToFloat64(metrics.HTTPRequestsRejected.WithLabelValues(metrics.RejectReasonRateLimit)))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom("192.168.1.101", "/test", ""))
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per client")

	requests, _ := guard.Counts(ip)
	assert.Equal(t, 6, requests)
}

func TestClientGuard_BadKeyFloodIsThrottled(t *testing.T) {
	guard := NewClientGuard(GuardLimits{Window: time.Minute, Requests: 100, FailedAuth: 3}, nil)
	handler := guarded(guard, "secret-key")
	ip := "10.1.1.1"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom(ip, "/api/v1/items", "wrong"))
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/api/v1/items", "wrong"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRetryAfter))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/api/v1/items", "secret-key"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "a locked out client stays out for the window")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/healthz", ""))
	assert.Equal(t, http.StatusOK, rec.Code, "public paths ignore the lockout")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom("10.1.1.2", "/api/v1/items", "secret-key"))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, failed := guard.Counts(ip)
	assert.Equal(t, 3, failed, "throttled attempts never reach the key check")
}

func TestClientGuard_WindowExpires(t *testing.T) {
	guard := NewClientGuard(GuardLimits{Window: 50 * time.Millisecond, Requests: 1}, nil)
	handler := guard.Throttle(okHandler())
	ip := "172.16.0.9"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/test", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom(ip, "/test", ""))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom(ip, "/test", ""))
		return rec.Code == http.StatusOK
	}, time.Second, 20*time.Millisecond)
}

func TestClientGuard_TrustedProxy(t *testing.T) {
	guard := NewClientGuard(GuardLimits{Window: time.Minute, Requests: 1}, []string{"10.0.0.1"})
	handler := guard.Throttle(okHandler())

	for _, client := range []string{"9.9.9.9", "8.8.8.8"} {
		req := requestFrom("10.0.0.1", "/test", "")
		req.Header.Set(HeaderForwardedFor, client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, client)
	}
}
