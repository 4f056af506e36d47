package client

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragpit/dockerhost-ip/internal/model"
)

func newTestClient(url string) *Client {
	return New(
		url,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithRetries(2, time.Millisecond, 2*time.Millisecond),
	)
}

func TestClient_Host(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      *model.HostResponse
		wantErr   string
		wantCalls int32
	}{
		{
			name:   "detected",
			status: http.StatusOK,
			body:   `{"host":"172.17.0.1","detected":true,"in_container":true}`,
			want: &model.HostResponse{
				Host:        "172.17.0.1",
				Detected:    true,
				InContainer: true,
			},
			wantCalls: 1,
		},
		{
			name:   "fallback",
			status: http.StatusOK,
			body:   `{"host":"localhost","docker_host":"unix:///var/run/docker.sock"}`,
			want: &model.HostResponse{
				Host:       "localhost",
				DockerHost: "unix:///var/run/docker.sock",
			},
			wantCalls: 1,
		},
		{
			name:      "undeterminable is not retried",
			status:    http.StatusServiceUnavailable,
			body:      `{"error":"docker host address could not be determined"}`,
			wantErr:   "could not be determined",
			wantCalls: 1,
		},
		{
			name:      "server error is retried",
			status:    http.StatusInternalServerError,
			body:      "boom",
			wantErr:   "non-ok status code: 500",
			wantCalls: 3,
		},
		{
			name:      "bad json",
			status:    http.StatusOK,
			body:      "{",
			wantErr:   "error decoding response",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, "/host", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestClient(srv.URL + "/").Host(t.Context())

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Ping(t.Context()))
}

func TestClient_Host_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Host(t.Context())
	assert.Error(t, err)
}
