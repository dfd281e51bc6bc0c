package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/blueprintgo/internal/app"
)

// ExitError carries a specific process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly (help shown), or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("blueprintgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
blueprintgo - compile and run visual-scripting blueprint graphs.

Usage:
  blueprintgo [options] [BLUEPRINT_PATH]

Arguments:
  BLUEPRINT_PATH
    Path to an authored .hcl blueprint (file or directory) or a persisted
    .blueprint asset.

Options:
`)
		flagSet.PrintDefaults()
	}

	blueprintFlag := flagSet.String("blueprint", "", "Path to the blueprint file or directory.")
	bFlag := flagSet.String("b", "", "Path to the blueprint file or directory (shorthand).")
	ticksFlag := flagSet.Int("ticks", 0, "Number of frames to simulate after begin-play.")
	dtFlag := flagSet.Float64("dt", 1.0/60.0, "Fixed frame delta passed to each tick, in seconds.")
	checkFlag := flagSet.Bool("check", false, "Compile only; report errors without running.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *blueprintFlag != "":
		path = *blueprintFlag
	case *bFlag != "":
		path = *bFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		BlueprintPath: path,
		Ticks:         *ticksFlag,
		Dt:            *dtFlag,
		CheckOnly:     *checkFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
