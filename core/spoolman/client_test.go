package spoolman

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{URL: srv.URL, TimeoutSeconds: 2, RetryCount: 0}, zap.NewNop())
}

func TestGetSpools(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/spool", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 1, "remaining_weight": 500, "location": "P1 - AMS A", "extra": {"tag": "\"ABC\""}},
			{"id": 2, "remaining_weight": 0, "location": null}
		]`)
	})

	spools, err := client.GetSpools(context.Background())
	require.NoError(t, err)
	require.Len(t, spools, 2)
	assert.Equal(t, 1, spools[0].ID)
	assert.Equal(t, "P1 - AMS A", spools[0].Location)
	assert.Equal(t, `"ABC"`, spools[0].Extra["tag"])
	assert.Equal(t, "", spools[1].Location)
}

func TestUpdateSpool_PayloadVariants(t *testing.T) {
	loc := "P1 - AMS B"
	weight := 250.0

	tests := []struct {
		name   string
		update SpoolUpdate
		want   map[string]any
	}{
		{
			name:   "location and weight",
			update: SpoolUpdate{Location: &loc, RemainingWeight: &weight},
			want:   map[string]any{"location": loc, "remaining_weight": weight},
		},
		{
			name:   "location only",
			update: SpoolUpdate{Location: &loc},
			want:   map[string]any{"location": loc},
		},
		{
			name:   "clear location wins",
			update: SpoolUpdate{Location: &loc, ClearLocation: true},
			want:   map[string]any{"location": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPatch, r.Method)
				assert.Equal(t, "/api/v1/spool/42", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				_, _ = io.WriteString(w, `{"id": 42}`)
			})

			spool, err := client.UpdateSpool(context.Background(), 42, tt.update)
			require.NoError(t, err)
			assert.Equal(t, 42, spool.ID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateSpool(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["filament_id"])
		assert.Equal(t, 500.0, body["remaining_weight"])
		assert.Equal(t, map[string]any{"tag": `"ABC"`}, body["extra"])
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"id": 99, "remaining_weight": 500}`)
	})

	weight := 500.0
	spool, err := client.CreateSpool(context.Background(), SpoolCreate{
		FilamentID:      7,
		RemainingWeight: &weight,
		Location:        "P1 - AMS A",
		Extra:           map[string]string{"tag": `"ABC"`},
	})
	require.NoError(t, err)
	assert.Equal(t, 99, spool.ID)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message": "not found"}`)
	})

	_, err := client.UpdateSpool(context.Background(), 1, SpoolUpdate{ClearLocation: true})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to update spool 1")
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status": "healthy"}`)
	})

	assert.NoError(t, client.Health(context.Background()))
}

func TestSpoolUpdate_IsEmpty(t *testing.T) {
	assert.True(t, SpoolUpdate{}.IsEmpty())
	assert.False(t, SpoolUpdate{ClearLocation: true}.IsEmpty())
}

// flakyServer answers the first request with 502 and every later one with body.
func flakyServer(t *testing.T, body string, calls *atomic.Int32) *Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{URL: srv.URL, TimeoutSeconds: 2, RetryCount: 2}, zap.NewNop())
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	client := flakyServer(t, `[{"id": 1}]`, &calls)

	spools, err := client.GetSpools(context.Background())
	require.NoError(t, err)
	assert.Len(t, spools, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryCreate(t *testing.T) {
	var calls atomic.Int32
	client := flakyServer(t, `{"id": 7}`, &calls)

	_, err := client.CreateSpool(context.Background(), SpoolCreate{FilamentID: 1})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}
