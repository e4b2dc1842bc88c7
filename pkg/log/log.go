// Package log encapsula o logrus com ID de correlação por requisição e
// um filtro de campos para o terminal de desenvolvimento.
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
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

const defaultLevel = logrus.InfoLevel

// developmentFields são os únicos campos mantidos em desenvolvimento
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"run_id":           true,
	"step":             true,
	"table":            true,
	"total":            true,
	"inserted":         true,
	"invoice_id":       true,
	"customer_id":      true,
	"job_type":         true,
}

type logger struct {
	entry *logrus.Entry
}

// L é o logger global, usado quando não há contexto de requisição
var L Logger = newLogger()

func newLogger() Logger {
	return &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// Setup define formato e nível dos processos em cmd/. Um nível inválido
// cai para info e é devolvido como erro para o chamador registrar.
func Setup(levelName string) (logrus.Level, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = defaultLevel
	}
	logrus.SetLevel(level)
	L = newLogger()

	return level, err
}

func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	default:
		return false
	}
}

// SetupTestLogger deixa a saída compacta e em debug nos testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = newLogger()
}

// visibleFields aplica o filtro de desenvolvimento; em produção nada é removido
func visibleFields(fields Fields) logrus.Fields {
	if !IsDevelopment() {
		return logrus.Fields(fields)
	}

	visible := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if developmentFields[key] {
			visible[key] = value
		}
	}
	return visible
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	visible := visibleFields(fields)
	if len(visible) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(visible)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	correlationID := GetCorrelationID(ctx)
	if correlationID == "" {
		return l
	}
	return l.WithField(correlationIDField, correlationID)
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Fatal registra e encerra o processo; só os main de cmd/ usam
func (l *logger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

// WithCorrelationID gera um novo ID e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
