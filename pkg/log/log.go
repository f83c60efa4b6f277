// Package log envolve o logrus com um ID de correlação por requisição.
package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação no contexto da requisição
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// Em desenvolvimento só estes campos aparecem, o resto é ruído no terminal
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"batch_id":         true,
	"entity":           true,
}

// entryLogger adapta um *logrus.Entry para a interface Logger
type entryLogger struct {
	*logrus.Entry
}

var L Logger = newEntryLogger()

func newEntryLogger() Logger {
	return entryLogger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// IsDevelopment considera APP_ENV vazio como desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Setup configura formato e nível do logrus a partir da configuração da aplicação
func Setup(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   !IsDevelopment(),
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("Nível de log inválido, usando info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.WithField("log_level", parsed.String()).Info("Nível de log configurado")
}

// SetupTestLogger deixa a saída estável para asserções nos testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	L = newEntryLogger()
}

func (l entryLogger) WithField(key string, value any) Logger {
	if IsDevelopment() && !developmentFields[key] {
		return l
	}
	return entryLogger{Entry: l.Entry.WithField(key, value)}
}

func (l entryLogger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return entryLogger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
	}

	kept := logrus.Fields{}
	for k, v := range fields {
		if developmentFields[k] {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return entryLogger{Entry: l.Entry.WithFields(kept)}
}

func (l entryLogger) WithError(err error) Logger {
	return entryLogger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o ID de correlação, se houver
func (l entryLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

// WithCorrelationID gera um novo ID e o coloca no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// ForContext é o atalho usado por handlers e serviços
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
