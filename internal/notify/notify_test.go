package notify

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestNoop_LogsOnly(t *testing.T) {
	buf := captureLog(t)

	Noop{}.Notify(context.Background(), fmt.Errorf("boom"), "pipeline step failed")

	assert.Contains(t, buf.String(), "pipeline step failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestTelegramNotifier_WithoutBotFallsBackToLog(t *testing.T) {
	buf := captureLog(t)

	n := NewTelegramNotifier(42)
	n.Notify(context.Background(), fmt.Errorf("boom"), "save speech job")

	assert.Contains(t, buf.String(), "save speech job")
}
