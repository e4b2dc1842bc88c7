package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/invoices-api/pkg/apiErrors"
	"github.com/vfg2006/invoices-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra informações sobre cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			logRequestStart(r, correlationID)

			next.ServeHTTP(lrw, r)

			logRequestEnd(r, correlationID, lrw.statusCode, time.Since(startTime))
		})
	}
}

func logRequestStart(r *http.Request, correlationID string) {
	// Em desenvolvimento, usamos um formato mais conciso
	if log.IsDevelopment() {
		log.L.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("→ Iniciando requisição")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
		"content_type":   r.Header.Get("Content-Type"),
		"content_length": r.ContentLength,
	}).Info("Requisição iniciada")
}

func logRequestEnd(r *http.Request, correlationID string, statusCode int, responseTime time.Duration) {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    responseTime.Milliseconds(),
		"status_code":    statusCode,
	}
	logger := log.L.WithFields(fields)

	message := "Requisição finalizada com sucesso"
	if log.IsDevelopment() {
		statusSymbol := "✓"
		if statusCode >= 400 {
			statusSymbol = "✗"
		}
		message = fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime))
	}

	switch {
	case statusCode >= 500:
		logger.Error(message)
	case statusCode >= 400:
		logger.Warn(message)
	default:
		logger.Info(message)
	}

	if responseTime > slowRequestThreshold {
		logger.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics e responde 500 no formato padrão de erro
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  fmt.Sprint(err),
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("❌ PANIC na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
