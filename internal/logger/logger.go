/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zap.WarnLevel)
	sugar atomic.Pointer[zap.SugaredLogger]
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	if w == io.Discard {
		sugar.Store(zap.NewNop().Sugar())
		return
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = zapcore.OmitKey
	ec.CallerKey = zapcore.OmitKey
	ec.NameKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	ec.ConsoleSeparator = ": "
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	sugar.Store(zap.New(core).Sugar())
}

// SetLevel sets the minimum level that is written.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// SetVerbose enables debug output when verbose is true, and restores the
// default warning level otherwise.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(zap.DebugLevel)
		return
	}
	SetLevel(zap.WarnLevel)
}

// L returns the underlying structured logger.
func L() *zap.SugaredLogger {
	return sugar.Load()
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	L().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	L().Infof(format, args...)
}

// Debug logs a debug message. Only written when verbose.
func Debug(format string, args ...any) {
	L().Debugf(format, args...)
}
