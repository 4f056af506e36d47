package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/fragpit/dockerhost-ip/internal/dockerhost"
)

const (
	DefaultImage = "alpine:3.20"

	helperLabel = "io.github.fragpit.dockerhost-ip.helper"
)

var _ dockerhost.HelperRunner = (*Runner)(nil)

// Runner launches throwaway containers through a dockertest pool. The
// containers join the daemon's default bridge network.
type Runner struct {
	pool   *dockertest.Pool
	logger *slog.Logger

	repository string
	tag        string
}

type Option func(*Runner)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithImage sets the helper image, e.g. "busybox:1.36".
func WithImage(image string) Option {
	return func(r *Runner) {
		r.repository, r.tag = splitImage(image)
	}
}

func NewRunner(pool *dockertest.Pool, opts ...Option) *Runner {
	r := &Runner{
		pool:   pool,
		logger: slog.Default(),
	}
	r.repository, r.tag = splitImage(DefaultImage)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewPool connects to the daemon at endpoint. An empty endpoint means
// DOCKER_HOST or the platform default socket.
func NewPool(ctx context.Context, endpoint string) (*dockertest.Pool, error) {
	pool, err := dockertest.NewPool(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error constructing pool: %w", err)
	}

	if err := pool.Client.PingWithContext(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	return pool, nil
}

// EndpointConfig describes the daemon the pool talks to.
func EndpointConfig(pool *dockertest.Pool) (*dockerhost.EndpointConfig, error) {
	return dockerhost.ParseEndpoint(pool.Client.Endpoint())
}

func (r *Runner) Image() string {
	return r.repository + ":" + r.tag
}

func (r *Runner) RunInHelper(
	ctx context.Context,
	cmd []string,
	fn dockerhost.HelperFunc,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resource, err := r.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: r.repository,
		Tag:        r.tag,
		Cmd:        cmd,
		Labels:     map[string]string{helperLabel: "true"},
	})
	if err != nil {
		return fmt.Errorf("failed to start helper container: %w", err)
	}

	id := resource.Container.ID
	r.logger.Debug(
		"helper container started",
		slog.String("container_id", id),
		slog.String("image", r.Image()),
		slog.Any("cmd", cmd),
	)

	defer func() {
		if err := r.pool.Purge(resource); err != nil {
			r.logger.Warn(
				"failed to remove helper container",
				slog.String("container_id", id),
				slog.Any("error", err),
			)
		}
	}()

	return fn(ctx, &container{client: r.pool.Client, id: id})
}

type container struct {
	client *docker.Client
	id     string
}

func (c *container) ID() string {
	return c.id
}

// Stdout reads the container's stdout from its very first line.
func (c *container) Stdout(ctx context.Context) (string, error) {
	var buf bytes.Buffer

	opts := docker.LogsOptions{
		Context:      ctx,
		Container:    c.id,
		Stdout:       true,
		Stderr:       false,
		Follow:       false,
		Since:        0,
		OutputStream: &buf,
		ErrorStream:  io.Discard,
	}
	if err := c.client.Logs(opts); err != nil {
		return "", fmt.Errorf("failed to read logs of %s: %w", c.id, err)
	}

	return buf.String(), nil
}

func splitImage(image string) (string, string) {
	slash := strings.LastIndex(image, "/")
	colon := strings.LastIndex(image, ":")
	if colon <= slash {
		return image, "latest"
	}

	return image[:colon], image[colon+1:]
}
