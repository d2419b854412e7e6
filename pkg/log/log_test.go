package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		logrus.SetOutput(original)
		Configure("local", "info")
	})
	return buf
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("local", "info") })

	Configure("production", "warn")
	assert.False(t, IsDevelopment())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Configure("local", "nivel-invalido")
	assert.True(t, IsDevelopment())
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	buf := captureOutput(t)
	Configure("local", "info")

	L.WithFields(Fields{
		"account_id": "acc-1",
		"query":      "status=active",
	}).Info("mensagem")

	out := buf.String()
	assert.Contains(t, out, "account_id=acc-1")
	assert.NotContains(t, out, "query")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	buf := captureOutput(t)
	Configure("production", "info")

	L.WithField("query", "status=active").Info("mensagem")

	assert.Contains(t, buf.String(), `"query":"status=active"`)
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
