package logger

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"orderdesk/config"
)

func TestSetupStderr(t *testing.T) {
	conf := config.Default()
	conf.Logging.LogLevel = "warn"
	l := log.New()
	require.NoError(t, Setup(conf, l))
	assert.Equal(t, log.WarnLevel, l.GetLevel())
	assert.Equal(t, os.Stderr, l.Out)
}

func TestSetupFile(t *testing.T) {
	conf := config.Default()
	conf.Logging.LogLevel = "debug"
	conf.Logging.LogPath = filepath.Join(t.TempDir(), "orderdesk.log")
	l := log.New()
	require.NoError(t, Setup(conf, l))

	out, ok := l.Out.(*lumberjack.Logger)
	require.True(t, ok)
	defer out.Close()

	l.Debug("order 100 created")
	data, err := os.ReadFile(conf.Logging.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "order 100 created")
	assert.Contains(t, string(data), "level=debug")
}

func TestSetupUnknownLevel(t *testing.T) {
	conf := config.Default()
	conf.Logging.LogLevel = "loud"
	l := log.New()
	assert.Error(t, Setup(conf, l))
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestParseLevel(t *testing.T) {
	for _, name := range config.LogLevels {
		lvl, err := parseLevel(name)
		require.NoError(t, err, name)
		want, err := log.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, lvl)
	}
}
