package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cleantmp: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cleantmp --help' for usage")
		os.Exit(exitError)
	}

	switch {
	case opts.showHelp:
		printHelp()
		os.Exit(exitOK)
	case opts.showVersion:
		fmt.Printf("cleantmp %s\n", Version)
		os.Exit(exitOK)
	default:
		os.Exit(runClean(opts))
	}
}

func printHelp() {
	fmt.Println("Usage: cleantmp [options]")
	fmt.Println()
	fmt.Println("Removes stale files from a temporary directory. Only regular")
	fmt.Println("files directly inside the directory are considered; nothing is")
	fmt.Println("scanned recursively.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --dir <path>       Directory to clean (default: system temp dir)")
	fmt.Println("  --age <duration>   Minimum age to remove, e.g. 72h or 7d (default: 7d)")
	fmt.Println("  --pattern <glob>   File name pattern, repeatable (default: *)")
	fmt.Println("  --dry-run, -n      Report without removing anything")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --help, -h         Show this help")
}
