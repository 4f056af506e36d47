package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fragpit/dockerhost-ip/internal/dockerhost"
	"github.com/fragpit/dockerhost-ip/internal/model"
)

const apiShutdownTimeout = 5 * time.Second

type HostResolver interface {
	DetectedHostIP(ctx context.Context) (string, bool)
	HostIPAddress(ctx context.Context, cfg dockerhost.ClientConfig) (string, bool)
	InContainer() bool
}

type Router struct {
	resolver HostResolver
	cfg      dockerhost.ClientConfig
	router   http.Handler
	logger   *slog.Logger
}

func NewRouter(
	l *slog.Logger,
	resolver HostResolver,
	cfg dockerhost.ClientConfig,
) *Router {
	r := &Router{
		logger:   l,
		resolver: resolver,
		cfg:      cfg,
	}
	r.router = r.initRoutes()
	return r
}

func (rt *Router) Handler() http.Handler {
	return rt.router
}

func (rt *Router) initRoutes() http.Handler {
	r := chi.NewMux()

	r.Use(middleware.Recoverer)
	r.Use(rt.slogMiddleware)
	r.Use(middleware.Compress(5, "application/json"))

	r.Get("/ping", rt.ping)
	r.Get("/host", rt.getHost)

	return r
}

func (rt *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      rt.router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			rt.logger.Error("failed to start server", slog.Any("error", err))
			errChan <- err
			return
		}
	}()

	rt.logger.Info("server started", slog.String("address", srv.Addr))

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			rt.logger.Error("failed to shutdown service gracefully")
			return err
		}

		rt.logger.Info("service shut down gracefully")
	}

	return nil
}

func (rt *Router) ping(resp http.ResponseWriter, _ *http.Request) {
	resp.Header().Set("Content-Type", "text/plain")
	resp.WriteHeader(http.StatusOK)
	_, _ = resp.Write([]byte("pong"))
}

func (rt *Router) getHost(resp http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	_, detected := rt.resolver.DetectedHostIP(ctx)
	host, ok := rt.resolver.HostIPAddress(ctx, rt.cfg)
	if !ok {
		rt.writeJSON(resp, http.StatusServiceUnavailable, model.ErrorResponse{
			Error: "docker host address could not be determined",
		})
		return
	}

	out := model.HostResponse{
		Host:        host,
		Detected:    detected,
		InContainer: rt.resolver.InContainer(),
	}
	if rt.cfg != nil && rt.cfg.DockerHost() != nil {
		out.DockerHost = rt.cfg.DockerHost().String()
	}

	rt.writeJSON(resp, http.StatusOK, out)
}

func (rt *Router) writeJSON(resp http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		rt.logger.Error("error marshaling response", slog.Any("error", err))
		http.Error(resp, "error marshaling response", http.StatusInternalServerError)
		return
	}

	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	_, _ = resp.Write(data)
}
