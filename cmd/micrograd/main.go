// Package main provides the micrograd CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0"

var errUnknownCommand = errors.New("unknown command")

func main() {
	logger := log.New(os.Stderr, "micrograd: ", 0)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "micrograd %s\n", version)
		return nil
	case "demo":
		return runDemo(args[1:], stdout)
	case "train":
		return runTrain(args[1:], stdout, logger)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		return fmt.Errorf("%w %q (run 'micrograd help')", errUnknownCommand, args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Differentiate the reference expression")
	fmt.Fprintln(w, "  train      Fit a small MLP to a single sample")
}
