package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/blueprintgo/internal/app"
	"github.com/vk/blueprintgo/internal/cli"
)

// main is the entrypoint for the blueprintgo binary.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the real logic so tests can drive it with their own writers.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a := app.New(outW, errW, cfg)
	return a.Run(context.Background(), cfg)
}
