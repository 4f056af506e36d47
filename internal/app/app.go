package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shirou/gopsutil/host"

	"github.com/fragpit/dockerhost-ip/internal/client"
	"github.com/fragpit/dockerhost-ip/internal/config"
	"github.com/fragpit/dockerhost-ip/internal/dockerhost"
	"github.com/fragpit/dockerhost-ip/internal/helper"
	"github.com/fragpit/dockerhost-ip/internal/router"
	"github.com/fragpit/dockerhost-ip/pkg/utils/buildinfo"
)

var ErrHostUndetermined = errors.New("docker host address could not be determined")

type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Run executes one hostip invocation. The resolved address goes to stdout,
// logs and usage go to stderr.
func Run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	bi BuildInfo,
) error {
	cfg, err := config.NewConfig(args, stderr)
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if cfg.Version {
		buildinfo.PrintBuildInfo(stdout, bi.Version, bi.Date, bi.Commit)
		return nil
	}

	logLevel, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	cfg.Debug(logger)

	if cfg.ServerURL != "" {
		return query(ctx, logger, cfg, stdout)
	}

	var runner dockerhost.HelperRunner
	var endpoint *dockerhost.EndpointConfig

	// The helper pool is only needed when the probe can run at all.
	if dockerhost.InContainer && !cfg.NoProbe {
		pool, err := helper.NewPool(ctx, cfg.DockerHost)
		if err != nil {
			logger.Warn(
				"docker is not reachable, route probe disabled",
				slog.Any("error", err),
			)
		} else {
			runner = helper.NewRunner(
				pool,
				helper.WithImage(cfg.HelperImage),
				helper.WithLogger(logger.With("service", "helper")),
			)
			if endpoint, err = helper.EndpointConfig(pool); err != nil {
				return err
			}
		}
	}

	if endpoint == nil {
		if endpoint, err = endpointConfig(cfg); err != nil {
			return err
		}
	}

	if cfg.Info {
		logDiagnostics(logger, endpoint)
	}

	resolver := dockerhost.NewResolver(
		runner,
		dockerhost.WithLogger(logger.With("service", "resolver")),
		dockerhost.WithInContainer(dockerhost.InContainer && !cfg.NoProbe),
		dockerhost.WithRetryDelay(cfg.RetryDelay),
	)

	if cfg.Serve {
		rt := router.NewRouter(
			logger.With("service", "router"),
			resolver,
			endpoint,
		)
		if err := rt.Run(ctx, cfg.Address); err != nil {
			return err
		}

		logger.Info("server shut down")
		return nil
	}

	host, ok := resolver.HostIPAddress(ctx, endpoint)
	if !ok {
		return fmt.Errorf("%w for %s", ErrHostUndetermined, endpoint)
	}

	fmt.Fprintln(stdout, host)
	return nil
}

func endpointConfig(cfg *config.Config) (*dockerhost.EndpointConfig, error) {
	if cfg.DockerHost != "" {
		return dockerhost.ParseEndpoint(cfg.DockerHost)
	}
	return dockerhost.ConfigFromEnv()
}

func query(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	stdout io.Writer,
) error {
	c := client.New(cfg.ServerURL, client.WithLogger(logger.With("service", "client")))

	resp, err := c.Host(ctx)
	if err != nil {
		return err
	}

	logger.Debug(
		"host from server",
		slog.String("host", resp.Host),
		slog.Bool("detected", resp.Detected),
		slog.Bool("in_container", resp.InContainer),
	)

	fmt.Fprintln(stdout, resp.Host)
	return nil
}

func logDiagnostics(logger *slog.Logger, endpoint *dockerhost.EndpointConfig) {
	system, role, err := host.Virtualization()
	if err != nil {
		logger.Warn("failed to detect virtualization", slog.Any("error", err))
	}

	attrs := []any{
		slog.Bool("docker_env_marker", dockerhost.InContainer),
		slog.String("marker_path", dockerhost.DockerEnvPath),
		slog.String("virtualization_system", system),
		slog.String("virtualization_role", role),
		slog.String("docker_host", endpoint.String()),
	}

	if h := endpoint.DockerHost().Hostname(); h != "" {
		if ip, err := localIPFor(h); err == nil {
			attrs = append(attrs, slog.String("local_ip", ip.String()))
		}
	}

	logger.Info("environment", attrs...)
}
