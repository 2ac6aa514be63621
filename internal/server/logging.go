package server

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// statusRecorder remembers what the wrapped handler wrote so the
// request log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += int64(n)
	return n, err
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Infof("%s %s -> %d (%d bytes in %s)", r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start))
	})
}
