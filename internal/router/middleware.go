package router

import (
	"log/slog"
	"net/http"
	"time"
)

func (rt *Router) slogMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rt.logger.Debug("request details",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("user_agent", r.UserAgent()),
			slog.String("host", r.Host),
			slog.String("request_id", r.Header.Get("X-Request-ID")),
			slog.String("accept_encoding", r.Header.Get("Accept-Encoding")),
		)

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		h.ServeHTTP(ww, r)

		rt.logger.Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.statusCode),
			slog.Int("resp_size", ww.size),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size

	return size, err
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
