package logging

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("ERROR"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("Info"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("unknown"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
}

func TestSetup_LogFile(t *testing.T) {
	origOut := logrus.StandardLogger().Out
	origLevel := logrus.GetLevel()
	defer func() {
		logrus.SetOutput(origOut)
		logrus.SetLevel(origLevel)
	}()

	logFile := filepath.Join(t.TempDir(), "fitlog")
	closer := Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogLevel:    "warn",
	})
	require.NotNil(t, closer)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	logrus.Warn("written to rotating file")
	require.NoError(t, closer.Close())
	assert.FileExists(t, logFile+".log")
}

func TestSetup_StdoutOnly(t *testing.T) {
	origOut := logrus.StandardLogger().Out
	origLevel := logrus.GetLevel()
	defer func() {
		logrus.SetOutput(origOut)
		logrus.SetLevel(origLevel)
	}()

	closer := Setup(LoggerSetupParams{LogLevel: "error"})
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
}

func TestSentryHook_Levels(t *testing.T) {
	levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel}
	hook := NewSentryHook(levels)
	assert.Equal(t, levels, hook.Levels())
}

func TestSentryHook_FireWithoutClient(t *testing.T) {
	hook := &SentryHook{levels: logrus.AllLevels, hub: sentry.NewHub(nil, sentry.NewScope())}
	err := hook.Fire(&logrus.Entry{Message: "no client bound", Level: logrus.ErrorLevel})
	assert.NoError(t, err)
}

func TestToSentryEvent(t *testing.T) {
	now := time.Now()
	entry := &logrus.Entry{
		Message: "add workout failed",
		Level:   logrus.ErrorLevel,
		Time:    now,
		Data: logrus.Fields{
			logrus.ErrorKey: errors.New("invalid duration"),
			"category":      "Workout",
		},
	}

	event := toSentryEvent(entry)
	assert.Equal(t, "add workout failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, now, event.Timestamp)
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "invalid duration", event.Exception[0].Value)
	assert.Equal(t, "Workout", event.Extra["category"])
	assert.NotContains(t, event.Extra, logrus.ErrorKey)
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(logrus.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}
