package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("painter", &buf, INFO)

	logger.Debug("скрытое сообщение")
	logger.Info("Placed block %d at (%d, %d)", 1, 2, 3)

	out := buf.String()
	assert.NotContains(t, out, "скрытое")
	assert.Contains(t, out, "[INFO] [painter] Placed block 1 at (2, 3)")
}

func TestDefaultLoggerNilIsSilent(t *testing.T) {
	SetDefaultLogger(nil)
	// Не должно паниковать без инициализации
	Info("ничего")
	Error("ничего")
}

func TestDefaultLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	SetDefaultLogger(NewWriterLogger("host", &buf, TRACE))
	defer SetDefaultLogger(nil)

	Trace("Кадр %d", 1)
	Debug("отладка")

	out := buf.String()
	assert.Contains(t, out, "[TRACE] [host] Кадр 1")
	assert.Contains(t, out, "[DEBUG] [host] отладка")

	buf.Reset()
	SetDefaultLevel(INFO)
	Trace("скрыто")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("Warning"))
	assert.Equal(t, INFO, ParseLevel("???"))
}
