package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL",
		"DOCKER_HOST",
		"HELPER_IMAGE",
		"ADDRESS",
		"SERVE",
		"HOSTIP_SERVER",
		"RETRY_DELAY",
		"NO_PROBE",
	} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(t.Context(), args, &stdout, &stderr, BuildInfo{
		Version: "1.0.0",
		Date:    "2026-10-17",
		Commit:  "deadbeef",
	})

	return stdout.String(), stderr.String(), err
}

func TestRun_PrintHost(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"tcp", "tcp://example.com:2375", "example.com\n"},
		{"https", "https://10.1.2.3:2376", "10.1.2.3\n"},
		{"unix", "unix:///var/run/docker.sock", "localhost\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			out, _, err := run(t, "-no-probe", "-H", tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_DockerHostFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCKER_HOST", "tcp://docker.ci.local:2375")
	t.Setenv("NO_PROBE", "true")

	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "docker.ci.local\n", out)
}

func TestRun_UnknownScheme(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "-no-probe", "-H", "npipe:////./pipe/docker_engine")
	assert.ErrorIs(t, err, ErrHostUndetermined)
	assert.Empty(t, out)
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "-version")
	require.NoError(t, err)
	assert.Equal(t,
		"Build version: 1.0.0\nBuild date: 2026-10-17\nBuild commit: deadbeef\n",
		out,
	)
}

func TestRun_Help(t *testing.T) {
	clearEnv(t)

	out, errOut, err := run(t, "-h")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "-no-probe")
}

func TestRun_BadFlag(t *testing.T) {
	clearEnv(t)

	_, _, err := run(t, "-bogus")
	assert.Error(t, err)
}

func TestRun_Info(t *testing.T) {
	clearEnv(t)

	out, errOut, err := run(t, "-no-probe", "-info", "-H", "unix:///var/run/docker.sock")
	require.NoError(t, err)
	assert.Equal(t, "localhost\n", out)
	assert.Contains(t, errOut, "docker_env_marker=")
	assert.NotContains(t, errOut, "local_ip=")
}

func TestRun_InfoLocalIP(t *testing.T) {
	clearEnv(t)

	out, errOut, err := run(t, "-no-probe", "-info", "-H", "tcp://127.0.0.1:2375")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1\n", out)
	assert.Contains(t, errOut, "local_ip=127.0.0.1")
}

func TestRun_Query(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"host":"172.17.0.1","detected":true,"in_container":true}`))
	}))
	defer srv.Close()

	out, _, err := run(t, "-query", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "172.17.0.1\n", out)
}

func TestRun_QueryUndeterminable(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"docker host address could not be determined"}`))
	}))
	defer srv.Close()

	out, _, err := run(t, "-query", srv.URL)
	assert.Error(t, err)
	assert.Empty(t, out)
}
