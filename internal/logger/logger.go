package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Label categorizes a log line by the subsystem that produced it
type Label string

const (
	LabelMiddlewareFallback Label = "MIDDLEWARE_FALLBACK"
	LabelEnvVars            Label = "UTILITY_ENV_VARS"
	LabelDatabaseConnection Label = "DATABASE_CONNECTION"
	LabelStoreOperations    Label = "STORE_OPERATIONS"
	LabelArtifactBucket     Label = "ARTIFACT_BUCKET"
	LabelServerStartup      Label = "SERVER_STARTUP"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logrus logger: JSON lines on out, filtered by level.
// Unknown levels fall back to info.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithContext creates a logger carrying the request id and subject stored in ctx, if any.
// ctx may be a request context filled by ContextWithRequestID/ContextWithSubject or a
// *gin.Context whose keys were set with RequestIDKey/SubjectKey.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if requestID := lookup(ctx, requestIDCtxKey, RequestIDKey); requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}
	if subject := lookup(ctx, subjectCtxKey, SubjectKey); subject != "" {
		logger.Entry = logger.Entry.WithField("user", subject)
	}

	return logger
}

// Keys for *gin.Context, read through c.Get
const (
	RequestIDKey = "request_id"
	SubjectKey   = "subject"
)

type contextKey string

const (
	requestIDCtxKey contextKey = "request_id"
	subjectCtxKey   contextKey = "subject"
)

// ContextWithRequestID returns a copy of ctx that WithContext tags with requestID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// ContextWithSubject returns a copy of ctx that WithContext tags with the token subject
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectCtxKey, subject)
}

func lookup(ctx context.Context, typed contextKey, plain string) string {
	if v, ok := ctx.Value(typed).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(plain).(string); ok {
		return v
	}
	return ""
}

// WithLabel tags every following line with a categorical label
func (l *Logger) WithLabel(label Label) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("label", string(label)),
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the "details" field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("details", err.Error()),
	}
}
