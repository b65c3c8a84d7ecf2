package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wavesplatform/mathutil/pkg/util/common"
)

var version = "v0.0.0"

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	var cfg config
	if err := cfg.parse(args, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		cfg.usage(stderr)
		return 1
	}
	if cfg.help {
		cfg.usage(stdout)
		return 0
	}
	if cfg.version {
		_, _ = fmt.Fprintf(stdout, "floormod %s\n", version)
		return 0
	}
	logger, log := common.SetupLogger(cfg.logLevel, stderr)
	defer func() {
		_ = logger.Sync()
	}()
	if err := run(cfg, stdout, log); err != nil {
		log.Errorf("Failed to execute command %q: %v", cfg.command, err)
		if errors.Is(err, errInvalidUsage) {
			return 1
		}
		return 2
	}
	return 0
}

func run(cfg config, stdout io.Writer, log *zap.SugaredLogger) error {
	switch cfg.command {
	case commandMod:
		res, err := evalMod(cfg, cfg.args[0], cfg.args[1], log)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, res)
		return err
	case commandIsInt:
		for _, s := range cfg.args {
			ok := common.IsInteger(s)
			log.Debugf("isint(%q) = %t", s, ok)
			if _, err := fmt.Fprintf(stdout, "%s\t%t\n", s, ok); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Wrapf(errInvalidUsage, "unknown command %q", cfg.command)
	}
}

func evalMod(cfg config, a, b string, log *zap.SugaredLogger) (string, error) {
	if !cfg.float && common.IsInteger(a) && common.IsInteger(b) {
		aa, err := common.ParseInteger(a)
		if err != nil {
			return "", errors.Wrap(err, "dividend")
		}
		bb, err := common.ParseInteger(b)
		if err != nil {
			return "", errors.Wrap(err, "divisor")
		}
		log.Debugf("Integer modulus of %d and %d", aa, bb)
		r, err := modInt(aa, bb, cfg.checked)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(r), nil
	}
	aa, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid dividend %q", a)
	}
	bb, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid divisor %q", b)
	}
	log.Debugf("Float modulus of %g and %g", aa, bb)
	var r float64
	if cfg.checked {
		r, err = common.CheckedModFloat64(aa, bb)
		if err != nil {
			return "", err
		}
	} else {
		r = common.ModFloat64(aa, bb)
	}
	return strconv.FormatFloat(r, 'g', -1, 64), nil
}

// modInt turns the runtime panic on a zero divisor into an error in unchecked mode.
func modInt(aa, bb int, checked bool) (r int, err error) {
	if checked {
		return common.CheckedModInt(aa, bb)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("mod(%d, %d): %v", aa, bb, rec)
		}
	}()
	return common.ModInt(aa, bb), nil
}
