package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultLogLevel   = "info"
	defaultImage      = "alpine:3.20"
	defaultAddress    = "localhost:8090"
	defaultRetryDelay = 3 * time.Second
)

var ErrHelp = flag.ErrHelp

type Config struct {
	LogLevel    string
	DockerHost  string
	HelperImage string
	Address     string
	Serve       bool
	ServerURL   string
	RetryDelay  time.Duration
	NoProbe     bool
	Info        bool
	Version     bool
}

// NewConfig parses args (without the program name). Environment variables
// take precedence over flags. Usage and parse errors go to output.
func NewConfig(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("hostip", flag.ContinueOnError)
	fs.SetOutput(output)

	logLevel := fs.String(
		"log-level",
		defaultLogLevel,
		"log level: debug, info, warn, error",
	)

	dockerHost := fs.String(
		"H",
		"",
		"docker daemon endpoint (default: DOCKER_HOST or the local socket)",
	)

	helperImage := fs.String(
		"image",
		defaultImage,
		"image used for the route probe container",
	)

	address := fs.String(
		"a",
		defaultAddress,
		"address to listen on in serve mode",
	)

	serve := fs.Bool(
		"serve",
		false,
		"serve the resolved host over http instead of printing it",
	)

	serverURL := fs.String(
		"query",
		"",
		"ask a running hostip server instead of resolving locally",
	)

	retryDelay := fs.Duration(
		"retry-delay",
		defaultRetryDelay,
		"delay between route probe attempts",
	)

	noProbe := fs.Bool(
		"no-probe",
		false,
		"never start the route probe container",
	)

	info := fs.Bool(
		"info",
		false,
		"log environment diagnostics before resolving",
	)

	version := fs.Bool(
		"version",
		false,
		"print build info and exit",
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    *logLevel,
		DockerHost:  *dockerHost,
		HelperImage: *helperImage,
		Address:     *address,
		Serve:       *serve,
		ServerURL:   *serverURL,
		RetryDelay:  *retryDelay,
		NoProbe:     *noProbe,
		Info:        *info,
		Version:     *version,
	}

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}

	if env := os.Getenv("DOCKER_HOST"); env != "" {
		cfg.DockerHost = env
	}

	if env := os.Getenv("HELPER_IMAGE"); env != "" {
		cfg.HelperImage = env
	}

	if env := os.Getenv("ADDRESS"); env != "" {
		cfg.Address = env
	}

	if env := os.Getenv("SERVE"); env != "" {
		v, err := strconv.ParseBool(env)
		if err != nil {
			return nil, fmt.Errorf("error converting parameter SERVE: %w", err)
		}
		cfg.Serve = v
	}

	if env := os.Getenv("NO_PROBE"); env != "" {
		v, err := strconv.ParseBool(env)
		if err != nil {
			return nil, fmt.Errorf("error converting parameter NO_PROBE: %w", err)
		}
		cfg.NoProbe = v
	}

	if env := os.Getenv("HOSTIP_SERVER"); env != "" {
		cfg.ServerURL = env
	}

	if env := os.Getenv("RETRY_DELAY"); env != "" {
		v, err := time.ParseDuration(env)
		if err != nil {
			return nil, fmt.Errorf("error converting parameter RETRY_DELAY: %w", err)
		}
		cfg.RetryDelay = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative: %s", c.RetryDelay)
	}

	if c.ServerURL != "" && !validateURL(c.ServerURL) {
		return fmt.Errorf("invalid server url: %q", c.ServerURL)
	}

	if c.Serve && c.ServerURL != "" {
		return errors.New("serve and query modes are mutually exclusive")
	}

	return nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}

func validateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}

func (c *Config) Debug(l *slog.Logger) {
	l.Debug(
		"hostip config",
		slog.String("log_level", c.LogLevel),
		slog.String("docker_host", c.DockerHost),
		slog.String("helper_image", c.HelperImage),
		slog.String("address", c.Address),
		slog.Bool("serve", c.Serve),
		slog.String("server_url", c.ServerURL),
		slog.Duration("retry_delay", c.RetryDelay),
		slog.Bool("no_probe", c.NoProbe),
	)
}
