package dockerhost

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"
)

const (
	defaultUnixHost  = "unix:///var/run/docker.sock"
	defaultNpipeHost = "npipe:////./pipe/docker_engine"
)

var ErrNoDockerHost = errors.New("docker host is not configured")

// ClientConfig describes how the Docker daemon is reached.
type ClientConfig interface {
	DockerHost() *url.URL
}

type EndpointConfig struct {
	host *url.URL
}

var _ ClientConfig = (*EndpointConfig)(nil)

// ParseEndpoint builds a ClientConfig from a daemon endpoint such as
// tcp://10.0.0.5:2376 or unix:///var/run/docker.sock.
func ParseEndpoint(endpoint string) (*EndpointConfig, error) {
	if endpoint == "" {
		return nil, ErrNoDockerHost
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse docker endpoint: %w", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("docker endpoint %q has no scheme", endpoint)
	}

	return &EndpointConfig{host: u}, nil
}

// ConfigFromEnv reads DOCKER_HOST, falling back to the platform default
// daemon socket.
func ConfigFromEnv() (*EndpointConfig, error) {
	if env := os.Getenv("DOCKER_HOST"); env != "" {
		return ParseEndpoint(env)
	}

	return ParseEndpoint(DefaultEndpoint())
}

func DefaultEndpoint() string {
	if runtime.GOOS == "windows" {
		return defaultNpipeHost
	}
	return defaultUnixHost
}

func (c *EndpointConfig) DockerHost() *url.URL {
	if c == nil {
		return nil
	}
	return c.host
}

func (c *EndpointConfig) String() string {
	if c == nil || c.host == nil {
		return ""
	}
	return c.host.String()
}
