package middleware

import "net/http"

// statusRecorder remembers what a handler sent so the access log and metrics
// can report it after the fact. A nested recorder is reused instead of wrapped
// twice.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	size    uint64
	written bool
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}

	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(status int) {
	if rec.written {
		return
	}

	rec.status, rec.written = status, true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(p []byte) (int, error) {
	rec.WriteHeader(http.StatusOK)

	n, err := rec.ResponseWriter.Write(p)
	rec.size += uint64(n)

	return n, err
}

func (rec *statusRecorder) Flush() {
	_ = http.NewResponseController(rec.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
