// Useful arithmetic and string routines shared by the tools of this module.
package common

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrNonPositiveDivisor is returned by the checked modulus functions when the divisor is zero or negative.
	ErrNonPositiveDivisor = errors.New("non-positive divisor")
	// ErrNotInteger is returned by ParseInteger for strings that are not decimal integers.
	ErrNotInteger = errors.New("not an integer")
)

// SetupLogger creates a console logger writing to w and installs it as the global zap logger.
// Unknown level names fall back to INFO.
func SetupLogger(level string, w io.Writer) (*zap.Logger, *zap.SugaredLogger) {
	al := zap.NewAtomicLevel()
	switch strings.ToUpper(level) {
	case "DEBUG":
		al.SetLevel(zap.DebugLevel)
	case "INFO":
		al.SetLevel(zap.InfoLevel)
	case "ERROR":
		al.SetLevel(zap.ErrorLevel)
	case "WARN":
		al.SetLevel(zap.WarnLevel)
	case "FATAL":
		al.SetLevel(zap.FatalLevel)
	default:
		al.SetLevel(zap.InfoLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al)
	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger, logger.Sugar()
}
