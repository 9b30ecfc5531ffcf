package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPing(context.Context) error   { return nil }
func downPing(context.Context) error { return errors.New("connection refused") }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("test-version", map[string]Pinger{"database": PingFunc(downPing)})

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantCode   int
		wantStatus string
	}{
		{
			name:       "all up",
			checks:     map[string]Pinger{"database": PingFunc(okPing), "redis": PingFunc(okPing)},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "redis down",
			checks:     map[string]Pinger{"database": PingFunc(okPing), "redis": PingFunc(downPing)},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
		},
		{
			name:       "no components",
			checks:     nil,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler("v", tt.checks)
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			resp := decodeHealth(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Empty(t, resp.Components)
			assert.Empty(t, resp.Version)
		})
	}
}

func TestHealth_ReportsComponents(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("1.2.3", map[string]Pinger{
		"database": PingFunc(okPing),
		"redis":    PingFunc(downPing),
	})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "down", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)

	require.Contains(t, resp.Components, "database")
	assert.Equal(t, "ok", resp.Components["database"].Status)
	assert.NotEmpty(t, resp.Components["database"].Latency)

	require.Contains(t, resp.Components, "redis")
	assert.Equal(t, "down", resp.Components["redis"].Status)
	assert.Empty(t, resp.Components["redis"].Latency)
}

func TestHealth_PingHasDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := NewHealthHandler("v", map[string]Pinger{
		"database": PingFunc(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}),
	})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hasDeadline)
}
