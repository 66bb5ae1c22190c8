// mkicon writes the PWA icons public/icon-192.png and public/icon-512.png.
// Usage: go run ./cmd/mkicon [check]
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/mkicon/internal/icon"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnError(generate(os.Stdout, icon.Targets))
		return
	}

	switch args[0] {
	case "check":
		exitOnError(check(os.Stdout, icon.Targets))
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "version", "-V", "--version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

// generate writes every target in order and stops at the first failure.
func generate(w io.Writer, targets []icon.Target) error {
	for _, t := range targets {
		if err := icon.Create(t.Size, t.Path); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", t.Path)
	}
	return nil
}

func check(w io.Writer, targets []icon.Target) error {
	for _, t := range targets {
		if err := icon.Verify(t.Path, t.Size); err != nil {
			return err
		}
		fmt.Fprintf(w, "OK %s\n", t.Path)
	}
	return nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "mkicon %s - Generate the PWA icons\n", version)
	fmt.Fprintln(w, `
Usage:
  mkicon                 Write public/icon-192.png and public/icon-512.png
  mkicon check           Verify the icons on disk match the generator

Commands:
  check                  Decode each icon and check size and colors
  version, -V            Show version and build date
  help, -h, --help       Show this help message

The public/ directory must exist; it is not created.`)
}
