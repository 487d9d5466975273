package server

import (
	"context"
	"crypto/subtle"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/metrics"
)

// GuardLimits bounds what one client address may do within a window. A
// non-positive Requests or FailedAuth disables that check.
type GuardLimits struct {
	Window     time.Duration
	Requests   int
	FailedAuth int
	MaxClients int
}

// DefaultGuardLimits returns the limits the server runs with.
func DefaultGuardLimits() GuardLimits {
	return GuardLimits{
		Window:     RateWindow,
		Requests:   RequestRateLimit,
		FailedAuth: FailedAuthLimit,
		MaxClients: MaxTrackedClients,
	}
}

type clientWindow struct {
	opened     time.Time
	requests   int
	failedAuth int
}

// ClientGuard throttles API clients by address. A client's window opens on
// its first request and its counters expire with it. Once a client reaches
// the failed key check limit it is locked out of every non-public route
// until the window closes, even with a valid key.
type ClientGuard struct {
	limits         GuardLimits
	trustedProxies []string

	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
}

// NewClientGuard creates a guard. Missing window or capacity settings fall
// back to the defaults.
func NewClientGuard(limits GuardLimits, trustedProxies []string) *ClientGuard {
	if limits.Window <= 0 {
		limits.Window = RateWindow
	}
	if limits.MaxClients <= 0 {
		limits.MaxClients = MaxTrackedClients
	}
	return &ClientGuard{
		limits:         limits,
		trustedProxies: trustedProxies,
		clients:        expirable.NewLRU[string, *clientWindow](limits.MaxClients, nil, limits.Window),
	}
}

type clientIPKey struct{}

type verdict struct {
	reason   string
	retry    time.Duration
	requests int
	alert    bool
}

// Throttle answers 429 with a Retry-After header to clients over the request
// limit and to locked out clients. It must run before Authenticate so that
// floods of bad keys are throttled too.
func (g *ClientGuard) Throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r, g.trustedProxies)
		v := g.admit(ip, isPublicPath(r.URL.Path))
		if v.reason == "" {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPKey{}, ip)))
			return
		}

		metrics.HTTPRequestsRejected.WithLabelValues(v.reason).Inc()
		if v.alert {
			logger.FromContext(r.Context()).Warn(SecurityAlertHighRate,
				"ip", ip,
				"requests", v.requests,
				"window", g.limits.Window)
		}
		w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(v.retry.Seconds()))))
		http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
	})
}

func (g *ClientGuard) admit(ip string, public bool) verdict {
	g.mu.Lock()
	defer g.mu.Unlock()

	win := g.window(ip)
	win.requests++
	retry := max(g.limits.Window-time.Since(win.opened), time.Second)

	if !public && g.limits.FailedAuth > 0 && win.failedAuth >= g.limits.FailedAuth {
		return verdict{reason: metrics.RejectReasonAuthLockout, retry: retry, requests: win.requests}
	}
	if g.limits.Requests > 0 && win.requests > g.limits.Requests {
		over := win.requests - g.limits.Requests
		return verdict{
			reason:   metrics.RejectReasonRateLimit,
			retry:    retry,
			requests: win.requests,
			alert:    over%RateAlertEvery == 1,
		}
	}
	return verdict{}
}

// Authenticate validates the X-API-Key header outside PublicPaths and counts
// every mismatch against the client.
func (g *ClientGuard) Authenticate(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip, ok := r.Context().Value(clientIPKey{}).(string)
			if !ok {
				ip = extractIP(r, g.trustedProxies)
			}
			failures := g.recordFailedAuth(ip)
			metrics.HTTPRequestsRejected.WithLabelValues(metrics.RejectReasonUnauthorized).Inc()

			log := logger.FromContext(r.Context())
			log.Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", providedKey != "",
				"ip", ip,
				"failures", failures)
			if failures == g.limits.FailedAuth {
				log.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures, "window", g.limits.Window)
			}

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func (g *ClientGuard) recordFailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	win := g.window(ip)
	win.failedAuth++
	return win.failedAuth
}

// Counts returns the requests and failed key checks seen from ip in its
// current window.
func (g *ClientGuard) Counts(ip string) (requests, failedAuth int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	win, ok := g.clients.Get(ip)
	if !ok {
		return 0, 0
	}
	return win.requests, win.failedAuth
}

// window returns the live window for ip, opening one when none is cached.
// Caller must hold the mutex.
func (g *ClientGuard) window(ip string) *clientWindow {
	if win, ok := g.clients.Get(ip); ok {
		return win
	}
	win := &clientWindow{opened: time.Now()}
	g.clients.Add(ip, win)
	return win
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size. A non-positive limit
// disables the check.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only read when
// the direct peer is a trusted proxy, and then its last hop wins.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}
	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
