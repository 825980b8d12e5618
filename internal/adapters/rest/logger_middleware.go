package rest

import (
	"net/http"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// TraceIDHeader несет trace_id от фронтенда или шлюза и возвращается в ответе.
const TraceIDHeader = "X-Trace-ID"

// requestTraceID принимает только uuid, иначе выдает новый.
func requestTraceID(r *http.Request) string {
	if traceID := r.Header.Get(TraceIDHeader); traceID != "" {
		if _, err := uuid.Parse(traceID); err == nil {
			return traceID
		}
	}
	return uuid.NewString()
}

// LoggerMiddleware кладет в контекст логгер с trace_id и пишет по записи на начало и конец запроса.
// Use case получает логгер без HTTP-полей.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := requestTraceID(r)
			requestLogger := logger.WithFields(port.Fields{"trace_id": traceID})

			ctx := contextkeys.ContextWithLogger(r.Context(), requestLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(TraceIDHeader, traceID)

			accessLogger := requestLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})
			accessLogger.Debug("Request started", nil)

			started := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := port.Fields{
				"status_code":   status,
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(started).Milliseconds(),
			}
			// шаблон маршрута известен только после того, как chi разобрал путь
			if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
				fields["http_route"] = rctx.RoutePattern()
			}

			switch {
			case status >= http.StatusInternalServerError:
				accessLogger.Error("Request failed", nil, fields)
			case status >= http.StatusBadRequest:
				accessLogger.Warn("Request finished with client error", fields)
			default:
				accessLogger.Info("Request finished", fields)
			}
		})
	}
}
