package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/NumeneraItems_Go/internal/config"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger installs the default logger writing to stdout and, when
// LOG_DIR is set, to a size-rotated file inside it. The returned closer
// releases the log file and must be closed on shutdown.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	addSource := cfg.Environment == config.DefaultEnvironment
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(logCfg, os.Stdout)
		slog.Info(LogMsgFileLoggingDisabled)
		logStartup(cfg, logCfg)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		LocalTime:  true,
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, rotator))
	logStartup(cfg, logCfg)

	return rotator, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "dir", cfg.LogDir)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"default_locale", cfg.DefaultLocale,
		"pack_path", cfg.PackPath,
		"strict_import", cfg.StrictImport)
}
