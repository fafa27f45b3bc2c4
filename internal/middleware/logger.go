package middleware

import (
	"log"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger prints one line per request:
// [2024-12-13 10:30:15] POST /api/tools/drainage/calc -> 200 OK (3ms) from 127.0.0.1
func Logger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			stop := time.Now()
			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}
			logger.Printf("[%s] %s %s -> %d %s (%dms) from %s",
				stop.Format("2006-01-02 15:04:05"), r.Method, path,
				rec.status, http.StatusText(rec.status),
				stop.Sub(start).Milliseconds(), clientIP(r))
		})
	}
}
