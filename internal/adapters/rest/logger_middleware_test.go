package rest

import (
	"net/http"
	"net/http/httptest"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/port"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type logEntry struct {
	level  string
	msg    string
	fields port.Fields
}

type entrySink struct {
	mu      sync.Mutex
	entries []logEntry
}

type sinkLogger struct {
	sink   *entrySink
	fields port.Fields
}

func (l sinkLogger) add(level, msg string, fields port.Fields) {
	merged := port.Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.entries = append(l.sink.entries, logEntry{level, msg, merged})
}

func (l sinkLogger) Info(msg string, f port.Fields)           { l.add("info", msg, f) }
func (l sinkLogger) Warn(msg string, f port.Fields)           { l.add("warn", msg, f) }
func (l sinkLogger) Error(msg string, _ error, f port.Fields) { l.add("error", msg, f) }
func (l sinkLogger) Debug(msg string, f port.Fields)          { l.add("debug", msg, f) }

func (l sinkLogger) WithFields(fields port.Fields) port.LoggerPort {
	merged := port.Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return sinkLogger{sink: l.sink, fields: merged}
}

func TestLoggerMiddlewareAccessLog(t *testing.T) {
	sink := &entrySink{}
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(sinkLogger{sink: sink}))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		contextkeys.LoggerFromContext(r.Context()).Info("inside handler", nil)
		switch chi.URLParam(r, "id") {
		case "missing":
			w.WriteHeader(http.StatusNotFound)
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte("ok"))
		}
	})

	cases := []struct {
		path  string
		level string
	}{
		{"/items/1", "info"},
		{"/items/missing", "warn"},
		{"/items/broken", "error"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			sink.entries = nil
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if len(sink.entries) != 3 {
				t.Fatalf("expected start, handler and finish entries, got %+v", sink.entries)
			}
			handler, finish := sink.entries[1], sink.entries[2]
			if _, ok := handler.fields["http_path"]; ok || handler.fields["trace_id"] != rec.Header().Get(TraceIDHeader) {
				t.Fatalf("handler logger must carry only the trace id: %+v", handler.fields)
			}
			if finish.level != tc.level || finish.fields["http_route"] != "/items/{id}" {
				t.Fatalf("unexpected finish entry %+v", finish)
			}
		})
	}
}
