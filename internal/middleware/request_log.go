package middleware

import (
	"net/http"
	"time"

	"pet-adoption-agency/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// LogFormatter conecta chimw.RequestLogger con platform/logger.
type LogFormatter struct {
	Logger logger.Logger
}

var _ chimw.LogFormatter = (*LogFormatter)(nil)

func (f *LogFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	base := f.Logger
	if base == nil {
		base = logger.Nop()
	}
	return &LogEntry{Logger: base.With(logger.Fields{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	})}
}

// LogEntry es el logger de un request: lo usan los handlers (vía contexto),
// la línea de acceso y chimw.Recoverer.
type LogEntry struct {
	Logger logger.Logger
}

func (e *LogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	if status == 0 {
		status = http.StatusOK
	}
	fields := logger.Fields{
		"status":      status,
		"bytes":       bytes,
		"duration_ms": elapsed.Milliseconds(),
	}
	if status >= http.StatusInternalServerError {
		e.Logger.Error("request", fields)
		return
	}
	e.Logger.Info("request", fields)
}

func (e *LogEntry) Panic(v any, stack []byte) {
	e.Logger.Error("panic recovered", logger.Fields{
		"panic": v,
		"stack": string(stack),
	})
}

// RequestLogger escribe una línea de acceso por request y deja el logger con
// request_id/method/path en el contexto. Va después de chimw.RequestID y
// antes de chimw.Recoverer.
func RequestLogger(base logger.Logger) func(http.Handler) http.Handler {
	logRequests := chimw.RequestLogger(&LogFormatter{Logger: base})
	return func(next http.Handler) http.Handler {
		return logRequests(scopeRequest(next))
	}
}

// scopeRequest devuelve el request id en la respuesta y pasa el logger de la
// entrada a logger.FromContext.
func scopeRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
		}
		if entry, ok := chimw.GetLogEntry(r).(*LogEntry); ok {
			r = r.WithContext(logger.WithContext(r.Context(), entry.Logger))
		}
		next.ServeHTTP(w, r)
	})
}
