package dockerhost

//go:generate mockgen -destination=../mocks/dockerhost/helper.go -package=mocks . HelperRunner,HelperContainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fragpit/dockerhost-ip/pkg/retry"
)

const (
	defaultAttempts   = 3
	defaultRetryDelay = 3 * time.Second
)

var ErrUnknownScheme = errors.New("unknown docker host scheme")

// RouteCommand lists the routing table inside the helper container.
var RouteCommand = []string{"ip", "route"}

// HelperContainer is a running or finished throwaway container.
type HelperContainer interface {
	ID() string
	// Stdout returns everything the container wrote to stdout since it
	// started.
	Stdout(ctx context.Context) (string, error)
}

type HelperFunc func(ctx context.Context, c HelperContainer) error

// HelperRunner starts a short-lived container running cmd, calls fn while
// the container exists and removes it afterwards.
type HelperRunner interface {
	RunInHelper(ctx context.Context, cmd []string, fn HelperFunc) error
}

// Resolver finds the address under which the Docker host is reachable.
// The route probe runs at most once per Resolver; share one Resolver for
// the lifetime of the process.
type Resolver struct {
	runner      HelperRunner
	logger      *slog.Logger
	inContainer bool
	attempts    int
	retryDelay  time.Duration

	once   sync.Once
	hostIP string
	found  bool
}

type Option func(*Resolver)

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithInContainer overrides the marker file check.
func WithInContainer(inContainer bool) Option {
	return func(r *Resolver) {
		r.inContainer = inContainer
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(r *Resolver) {
		r.retryDelay = d
	}
}

func WithAttempts(n int) Option {
	return func(r *Resolver) {
		r.attempts = n
	}
}

func NewResolver(runner HelperRunner, opts ...Option) *Resolver {
	r := &Resolver{
		runner:      runner,
		logger:      slog.Default(),
		inContainer: InContainer,
		attempts:    defaultAttempts,
		retryDelay:  defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) InContainer() bool {
	return r.inContainer
}

// DetectedHostIP returns the default gateway seen from a helper container.
// The first call performs the probe; concurrent first callers wait for it
// and every later call returns the same result. Cancellation of ctx does
// not stop the probe: its outcome is kept for the life of the Resolver.
func (r *Resolver) DetectedHostIP(ctx context.Context) (string, bool) {
	r.once.Do(func() {
		r.hostIP, r.found = r.detect(context.WithoutCancel(ctx))
	})

	return r.hostIP, r.found
}

// HostIPAddress returns the detected host IP, or an address derived from
// the daemon endpoint scheme when detection produced nothing.
func (r *Resolver) HostIPAddress(ctx context.Context, cfg ClientConfig) (string, bool) {
	if ip, ok := r.DetectedHostIP(ctx); ok {
		return ip, true
	}

	host, err := HostFromConfig(cfg)
	if err != nil {
		r.logger.Debug(
			"can't derive docker host address from config",
			slog.Any("error", err),
		)
		return "", false
	}

	return host, true
}

// HostFromConfig maps the daemon endpoint to a reachable host.
func HostFromConfig(cfg ClientConfig) (string, error) {
	if cfg == nil || cfg.DockerHost() == nil {
		return "", ErrNoDockerHost
	}

	u := cfg.DockerHost()
	switch u.Scheme {
	case "http", "https", "tcp":
		// IPv6 hosts come back without brackets.
		host := u.Hostname()
		if host == "" {
			return "", fmt.Errorf("%w: endpoint %q has no host", ErrNoDockerHost, u)
		}
		return host, nil
	case "unix":
		return "localhost", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}
}

func (r *Resolver) detect(ctx context.Context) (string, bool) {
	if !r.inContainer {
		return "", false
	}

	if r.runner == nil {
		r.logger.Warn("no helper runner configured, skipping default gateway probe")
		return "", false
	}

	ip, err := r.probe(ctx)
	if err != nil {
		r.logger.Warn(
			"can't parse the default gateway ip",
			slog.Any("error", err),
		)
		return "", false
	}

	ip, ok := normalizeHostIP(ip)
	if ok {
		r.logger.Debug("detected docker host ip", slog.String("ip", ip))
	}
	return ip, ok
}

func normalizeHostIP(ip string) (string, bool) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return "", false
	}
	return ip, true
}

func (r *Resolver) probe(ctx context.Context) (ip string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("helper container runner panicked: %v", rec)
		}
	}()

	err = r.runner.RunInHelper(ctx, RouteCommand, func(ctx context.Context, c HelperContainer) error {
		retrier := retry.New(
			retry.Always,
			retry.WithAttempts(r.attempts, r.retryDelay),
			retry.WithLogger(r.logger),
		)

		return retrier.Do(ctx, func(ctx context.Context) error {
			output, err := c.Stdout(ctx)
			if err != nil {
				return fmt.Errorf("failed to read helper container output: %w", err)
			}

			parsed, err := ParseDefaultRoute(output)
			if err != nil {
				r.logger.Warn(
					"'ip route' did not contain a default route",
					slog.String("container_id", c.ID()),
					slog.String("output", strings.TrimSpace(output)),
				)
				return err
			}

			ip = parsed
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("default gateway probe failed: %w", err)
	}

	return ip, nil
}
