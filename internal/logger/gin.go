package logger

import (
	"context"
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
)

const (
	HeaderRequestID = "X-Request-Id"
	contextKey      = "logger"
)

// RequestID honours an incoming X-Request-Id (or mints one) and stores a
// request-scoped entry in the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, rid)
		entry := logrus.WithField("request_id", rid)
		c.Set(contextKey, entry)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), entry))
		c.Next()
	}
}

// FromGin pulls the request-scoped entry from the gin context.
func FromGin(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(contextKey); ok {
		if e, ok := v.(*logrus.Entry); ok && e != nil {
			return e
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying entry.
func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the entry stored by WithContext, or a bare standard-logger entry.
func FromContext(ctx context.Context) *logrus.Entry {
	if e, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok && e != nil {
		return e
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// AccessLog writes one line per request to w, skipping the health and metrics endpoints.
func AccessLog(w io.Writer) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(w),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
	)
}
