package main

import (
	"io"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

const (
	commandMod   = "mod"
	commandIsInt = "isint"
)

var errInvalidUsage = errors.New("invalid usage")

type config struct {
	float    bool
	checked  bool
	help     bool
	version  bool
	logLevel string
	command  string
	args     []string

	fs *flag.FlagSet
}

func (c *config) parse(args []string, output io.Writer) error {
	c.fs = flag.NewFlagSet("floormod", flag.ContinueOnError)
	c.fs.SetOutput(output)
	// Flags stop at the command so that negative operands are not taken for shorthand flags.
	c.fs.SetInterspersed(false)
	c.fs.BoolVarP(&c.float, "float", "f", false, "Evaluate the modulus on float64 operands even if both are integers")
	c.fs.BoolVar(&c.checked, "checked", false, "Reject zero or negative divisors instead of using the native remainder behaviour")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Print usage information (this message) and quit")
	c.fs.BoolVarP(&c.version, "version", "v", false, "Print version information and quit")
	c.fs.StringVarP(&c.logLevel, "log-level", "l", "INFO", "Logging level. Supported levels: DEBUG, INFO, WARN, ERROR, FATAL")
	if err := c.fs.Parse(args); err != nil {
		return errors.Wrap(errInvalidUsage, err.Error())
	}
	if c.help || c.version {
		return nil
	}
	rest := c.fs.Args()
	if len(rest) == 0 {
		return errors.Wrap(errInvalidUsage, "no command")
	}
	c.command, c.args = rest[0], rest[1:]
	switch c.command {
	case commandMod:
		if len(c.args) != 2 {
			return errors.Wrapf(errInvalidUsage, "command %q expects 2 operands, got %d", c.command, len(c.args))
		}
	case commandIsInt:
		if len(c.args) == 0 {
			return errors.Wrapf(errInvalidUsage, "command %q expects at least one argument", c.command)
		}
	default:
		return errors.Wrapf(errInvalidUsage, "unknown command %q", c.command)
	}
	return nil
}

func (c *config) usage(w io.Writer) {
	_, _ = io.WriteString(w, "usage: floormod [flags] mod A B\n       floormod [flags] isint S...\n")
	c.fs.SetOutput(w)
	c.fs.PrintDefaults()
}
