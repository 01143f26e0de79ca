package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := SetupLogging(logrus.InfoLevel)
	logger.SetOutput(&buf)
	return logger, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_UsesLoglevelKey(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.Warn("hello")

	entry := lastEntry(t, buf)
	assert.Equal(t, "warning", entry["loglevel"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}

func TestLogData_Context(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
	assert.Nil(t, GetLogData(context.Background()))

	GetLogData(ctx).AddData("trackCount", 3)
	stop := logData.AddToExistingTiming("queryMs")
	stop()
	logData.Log().Info("done")

	entry := lastEntry(t, buf)
	assert.Equal(t, float64(3), entry["trackCount"])
	assert.Contains(t, entry, "queryMs")
}

func TestLoggingWrapper(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, _ *http.Request, logData *LogData) error {
		logData.AddData("seen", true)
		w.WriteHeader(http.StatusTeapot)
		return nil
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.Test.Complete", entry["msg"])
	assert.Equal(t, true, entry["seen"])
	assert.Contains(t, entry, "duration")
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Test", logger, func(http.ResponseWriter, *http.Request, *LogData) error {
		return errors.New("broken")
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.Test.Error", entry["msg"])
	assert.Equal(t, "broken", entry["error"])
	assert.Equal(t, "error", entry["loglevel"])
}
