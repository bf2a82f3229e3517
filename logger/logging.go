package logger

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"orderdesk/config"
)

// Setup points l at the configured log file, or stderr when none is set.
func Setup(conf config.Config, l *log.Logger) error {
	level, err := parseLevel(conf.Logging.LogLevel)
	if err != nil {
		return err
	}
	if conf.Logging.LogPath != "" {
		l.SetOutput(&lumberjack.Logger{
			Filename:   conf.Logging.LogPath,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, //days
			Compress:   true,
		})
	} else {
		l.SetOutput(os.Stderr)
	}
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		TimestampFormat: time.DateTime,
	})
	return nil
}

func parseLevel(name string) (log.Level, error) {
	switch name {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	case "panic":
		return log.PanicLevel, nil
	default:
		return 0, fmt.Errorf("unknown logging level %q, check the config", name)
	}
}
