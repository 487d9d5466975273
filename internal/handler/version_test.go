package handler

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVersion(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	tests := []struct {
		name       string
		buildTime  string
		configured string
		want       string
	}{
		{"build time wins", "1.4.0", "0.9.0", "1.4.0"},
		{"environment when not stamped", "dev", "0.9.0", "0.9.0"},
		{"empty build version", "", "0.9.0", "0.9.0"},
		{"default", "dev", "", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.buildTime
			assert.Equal(t, tt.want, resolveVersion(tt.configured))
		})
	}
}

func TestHandleVersion(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })
	Version = "dev"

	w := httptest.NewRecorder()
	HandleVersion("2.1.0").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	info := decodeBody[VersionInfo](t, w)
	assert.Equal(t, "2.1.0", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
