package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	return &buf
}

func TestLogger_DevelopmentFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"run_id":      "aB3xYz",
		"step":        "invoices",
		"inserted":    13,
		"remote_addr": "10.0.0.1",
	}).Info("Etapa do seed concluída")

	out := buf.String()
	assert.Contains(t, out, "run_id=aB3xYz")
	assert.Contains(t, out, "step=invoices")
	assert.Contains(t, out, "inserted=13")
	assert.NotContains(t, out, "remote_addr")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("remote_addr", "10.0.0.1").Info("Requisição iniciada")

	assert.Contains(t, buf.String(), "remote_addr=10.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	tests := []struct {
		name      string
		levelName string
		wantLevel logrus.Level
		wantErr   bool
	}{
		{name: "Nível válido", levelName: "debug", wantLevel: logrus.DebugLevel},
		{name: "Nível inválido cai para info", levelName: "verboso", wantLevel: logrus.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := Setup(tt.levelName)

			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantLevel, logrus.GetLevel())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).Info("Fatura criada")

	assert.Contains(t, buf.String(), "correlation_id="+correlationID)
}
