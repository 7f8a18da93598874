package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

// Exit codes. exitNoTool is the distinguished status for a host with
// no canonicalization tool installed.
const (
	exitOK     = 0
	exitError  = 1
	exitNoTool = 15
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'resolve --help' for usage")
		os.Exit(exitError)
	}

	switch {
	case opts.showHelp:
		printHelp()
		os.Exit(exitOK)
	case opts.showVersion:
		fmt.Printf("resolve %s\n", Version)
		os.Exit(exitOK)
	case opts.doctor:
		os.Exit(runDoctor())
	default:
		os.Exit(runResolve(opts.paths, opts.verbose))
	}
}

func printHelp() {
	fmt.Println("Usage: resolve [options] [--] <path> [path...]")
	fmt.Println()
	fmt.Println("Prints the canonical absolute form of each path, one per line,")
	fmt.Println("in input order. Relative segments and symlinks are resolved by")
	fmt.Println("the first installed tool among: gnureadlink, greadlink, readlink.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --doctor       Report the detected platform and selected tool")
	fmt.Println("  --verbose, -v  Trace tool probing on stderr")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --help, -h     Show this help")
	fmt.Println()
	fmt.Println("Exit codes:")
	fmt.Println("  0   success")
	fmt.Println("  1   invocation or tool error")
	fmt.Println("  15  no canonicalization tool installed")
}
