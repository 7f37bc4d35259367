package middleware

import (
	"context"
	"net/http"
	"time"

	"amigos-con-cola/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type requestMetaKey struct{}

// requestMeta travels down the chain so inner middleware can add fields to
// the access log.
type requestMeta struct {
	userID string
}

func setAuthenticatedUser(ctx context.Context, userID uuid.UUID) {
	if meta, ok := ctx.Value(requestMetaKey{}).(*requestMeta); ok {
		meta.userID = userID.String()
	}
}

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Handle tags the response with a request id (reusing an inbound
// X-Request-ID), recovers panics as 500s and writes one access log entry per
// request, including the authenticated user when there is one.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		entry := m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		meta := &requestMeta{}

		defer func() {
			if meta.userID != "" {
				entry = entry.WithField("user_id", meta.userID)
			}
			if p := recover(); p != nil {
				entry.Errorf("panic: %v", p)
				response.InternalServerError(rec, "")
			}
			entry.WithFields(logrus.Fields{
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request completed")
		}()

		ctx := context.WithValue(r.Context(), requestMetaKey{}, meta)
		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}
