package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "./config.yaml"
	DefaultLogLevel  = "info"
	DefaultFileName  = "orders.xlsx"
	DefaultHotButton = 6
	DefaultDumpSize  = 8
)

var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

type Config struct {
	Menu struct {
		File string `yaml:"file"` // empty means the built-in menu
	} `yaml:"menu"`
	Logging struct {
		LogPath  string `yaml:"logPath"`  // empty logs to stderr
		LogLevel string `yaml:"logLevel"` // possible options are: trace, debug, info, warn, error, fatal, panic
	} `yaml:"logging"`
	Export struct {
		OutDir   string `yaml:"outDir"`
		FileName string `yaml:"fileName"`
	} `yaml:"export"`
	HotButtons struct {
		Limit int `yaml:"limit"`
	} `yaml:"hotButtons"`
	Dumps struct {
		RejectsFile string `yaml:"rejectsFile"` // empty disables the dump
		MaxDumpSize int    `yaml:"maxDumpSize"` // in megabytes
	} `yaml:"dumps"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	var conf Config
	applyDefaults(&conf)
	return conf
}

func applyDefaults(conf *Config) {
	if conf.Logging.LogLevel == "" {
		conf.Logging.LogLevel = DefaultLogLevel
	}
	if conf.Export.OutDir == "" {
		conf.Export.OutDir = "."
	}
	if conf.Export.FileName == "" {
		conf.Export.FileName = DefaultFileName
	}
	if conf.HotButtons.Limit == 0 {
		conf.HotButtons.Limit = DefaultHotButton
	}
	if conf.Dumps.MaxDumpSize == 0 {
		conf.Dumps.MaxDumpSize = DefaultDumpSize
	}
}

// ValidateConfig reports every bad field at once.
func ValidateConfig(conf Config) error {
	var errs []error
	if !validLevel(conf.Logging.LogLevel) {
		errs = append(errs, fmt.Errorf("wrong value for log level %q: must be one of %v", conf.Logging.LogLevel, LogLevels))
	}
	if conf.HotButtons.Limit < 0 {
		errs = append(errs, fmt.Errorf("wrong value for hot buttons limit: must be >=0"))
	}
	if conf.Dumps.MaxDumpSize < 0 {
		errs = append(errs, fmt.Errorf("wrong value for max dump size: must be >0 megabytes"))
	}
	if conf.Export.FileName == "" {
		errs = append(errs, fmt.Errorf("export file name must not be empty"))
	}
	return errors.Join(errs...)
}

func ParseConfig(path string) (Config, error) {
	var conf Config
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err = yaml.Unmarshal(file, &conf); err != nil {
		return Config{}, fmt.Errorf("cant unmarshall config: %w", err)
	}
	applyDefaults(&conf)
	if err = ValidateConfig(conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func validLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}
