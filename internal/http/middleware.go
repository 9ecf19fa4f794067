package apihttp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/nigelapi/internal/logging"
	"github.com/example/nigelapi/internal/metrics"
	"github.com/example/nigelapi/internal/rate"
	"github.com/example/nigelapi/pkg/jsonutil"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "req_id"

// RequestID middleware injects a request id into context and response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID))
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

// Logger middleware logs minimal structured info per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rlw := &respLogger{ResponseWriter: w, status: 200}
		next.ServeHTTP(rlw, r)
		reqID, _ := r.Context().Value(ctxKeyRequestID).(string)
		logging.Logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rlw.status),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
			zap.String("ip", rate.IPFromRequest(r)),
			zap.String("req_id", reqID))
	})
}

type respLogger struct{ http.ResponseWriter; status int }

func (r *respLogger) WriteHeader(code int) { r.status = code; r.ResponseWriter.WriteHeader(code) }

// Recover middleware converts handler panics into a structured 500 body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path))
				jsonutil.Error(w, http.StatusInternalServerError,
					"Internal server error", "An unexpected error occurred during calculation")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORS middleware: allows cross-origin requests for browser clients.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Metrics middleware records request counts and latency.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rlw := &respLogger{ResponseWriter: w, status: 200}
		next.ServeHTTP(rlw, r)
		metrics.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rlw.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// RateLimit middleware enforces per-IP rate limiting.
func RateLimit(lm *rate.LimiterMap) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := rate.IPFromRequest(r)
			if !lm.Allow(ip) {
				jsonutil.Error(w, http.StatusTooManyRequests,
					"Rate limited", "Too many requests, slow down.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
