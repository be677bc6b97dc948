// Copyright 2024 WaterCylinder
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil holds the process-wide zap logger. The library itself
// logs very little (containers are silent); the logger exists for pool
// diagnostics and for embedding applications that want one place to
// configure logging.
package logutil

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the global logger. All fields are optional and
// can be loaded from a TOML file, see LoadConfig.
type LogConfig struct {
	// Level is the minimum enabled level: debug, info, warn, error, panic, fatal.
	Level string `toml:"level"`
	// Format is the encoder format, "console" or "json".
	Format string `toml:"format"`
	// Filename, when set, sends output to a rotated file instead of stderr.
	Filename string `toml:"filename"`
	// MaxSize is the maximum size in MB of a log file before rotation.
	MaxSize int `toml:"max-size"`
	// MaxDays is the maximum number of days to retain old log files.
	MaxDays int `toml:"max-days"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `toml:"max-backups"`
}

// Adjust fills in defaults for unset fields.
func (cfg *LogConfig) Adjust() {
	if cfg.Level == "" {
		cfg.Level = zapcore.InfoLevel.String()
	}
	if cfg.Format == "" {
		cfg.Format = "console"
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = 512
	}
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	return zap.NewAtomicLevelAt(level)
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename != "" {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}
	return zapcore.Lock(os.Stderr)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

// LoadConfig reads a LogConfig from a TOML file.
func LoadConfig(path string) (*LogConfig, error) {
	var cfg LogConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.Adjust()
	return &cfg, nil
}

var (
	globalLogger atomic.Pointer[zap.Logger]
	setupOnce    sync.Once
)

// SetupLogger builds the global logger from cfg. Calling it again
// replaces the previous logger.
func SetupLogger(cfg *LogConfig) {
	cfg.Adjust()
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	globalLogger.Store(zap.New(core, cfg.getOptions()...))
}

// GetGlobalLogger returns the global logger, setting up a default
// console logger on first use.
func GetGlobalLogger() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	setupOnce.Do(func() {
		if globalLogger.Load() == nil {
			SetupLogger(&LogConfig{})
		}
	})
	return globalLogger.Load()
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}
