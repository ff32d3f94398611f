// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger on w. Levels are colored when w is a
// terminal.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core)
}
