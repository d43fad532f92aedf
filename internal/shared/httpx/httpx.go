package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"demo-api/pkg/res"

	"go.uber.org/zap"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap turns an error-returning handler into an http.Handler. Handlers
// write their own success and not-found responses; a returned error is
// an input or constraint failure and maps to 400.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			res.Error(w, err.Error(), http.StatusBadRequest)
		}
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	return t, err
}

// PathID parses the named path value as an identifier.
func PathID(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	return uint(v), err
}

// QueryBool reads a boolean query parameter, falling back to def when
// absent or malformed.
func QueryBool(r *http.Request, name string, def bool) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// QueryInt reads an integer query parameter, falling back to def when
// absent or malformed.
func QueryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Logging logs every request with method, path, status and duration.
func Logging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sr.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
