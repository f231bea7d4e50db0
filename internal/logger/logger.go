// Package logger configures logrus for the server and carries request-scoped
// fields through context.
package logger

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "requestId"

// Setup configures the standard logrus logger. Every value in secrets is
// replaced with a placeholder in all log output.
func Setup(level string, secrets ...string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("configured_level", level).Warn("[INIT] invalid log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.ReplaceHooks(make(logrus.LevelHooks))
	if hook := NewRedactHook(secrets...); hook != nil {
		log.AddHook(hook)
	}
	return log
}

// For returns an entry tagged with the request id stored in ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("request_id", id)
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Track logs msg with its duration when the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())

		if dur > 10*time.Second {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Infof("%s completed", msg)
		}
	}
}

const RedactedPlaceholder = "[REDACTED]"

// RedactHook scrubs known secret values from messages and string fields.
type RedactHook struct {
	replacer *strings.Replacer
}

// NewRedactHook returns nil when there is nothing to redact.
func NewRedactHook(secrets ...string) *RedactHook {
	var pairs []string
	for _, s := range secrets {
		if s == "" {
			continue
		}
		pairs = append(pairs, s, RedactedPlaceholder)
	}
	if len(pairs) == 0 {
		return nil
	}
	return &RedactHook{replacer: strings.NewReplacer(pairs...)}
}

func (h *RedactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *RedactHook) Fire(entry *logrus.Entry) error {
	entry.Message = h.replacer.Replace(entry.Message)
	for k, v := range entry.Data {
		switch val := v.(type) {
		case string:
			entry.Data[k] = h.replacer.Replace(val)
		case error:
			entry.Data[k] = h.replacer.Replace(val.Error())
		}
	}
	return nil
}
