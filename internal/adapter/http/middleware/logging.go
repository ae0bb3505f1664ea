package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/fiscledger/internal/usecase"
)

// LoggingMiddleware writes one access log line per request.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a new LoggingMiddleware.
func NewLoggingMiddleware(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Wrap logs 5xx responses at error level, 4xx at warn and the rest at info.
func (m *LoggingMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = m.logger.Error()
		case status >= http.StatusBadRequest:
			ev = m.logger.Warn()
		default:
			ev = m.logger.Info()
		}

		ctx := r.Context()
		if rc := chi.RouteContext(ctx); rc != nil && rc.RoutePattern() != "" {
			ev = ev.Str("route", rc.RoutePattern())
		}

		ev.Str("request_id", chimiddleware.GetReqID(ctx)).
			Str("user_id", usecase.UserIDFromContext(ctx)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
