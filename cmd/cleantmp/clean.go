package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ThaddeusVailCorbin/pathkit/internal/cleaner"
)

// cleanOptions holds the parsed command line.
type cleanOptions struct {
	showHelp    bool
	showVersion bool
	dir         string
	age         time.Duration
	patterns    []string
	dryRun      bool
}

// parseArgs parses the cleantmp command line.
func parseArgs(args []string) (cleanOptions, error) {
	var opts cleanOptions

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			opts.showHelp = true
		case "--version":
			opts.showVersion = true
		case "--dry-run", "-n":
			opts.dryRun = true
		case "--dir":
			i++
			if i >= len(args) {
				return cleanOptions{}, fmt.Errorf("--dir requires a value")
			}
			opts.dir = args[i]
		case "--age":
			i++
			if i >= len(args) {
				return cleanOptions{}, fmt.Errorf("--age requires a value")
			}
			age, err := parseAge(args[i])
			if err != nil {
				return cleanOptions{}, fmt.Errorf("invalid --age %q: %w", args[i], err)
			}
			opts.age = age
		case "--pattern":
			i++
			if i >= len(args) {
				return cleanOptions{}, fmt.Errorf("--pattern requires a value")
			}
			opts.patterns = append(opts.patterns, args[i])
		default:
			return cleanOptions{}, fmt.Errorf("unknown option: %s", arg)
		}
	}

	return opts, nil
}

// parseAge parses a duration, additionally accepting a trailing "d"
// for days since cleanup ages are usually quoted in days.
func parseAge(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid day count")
		}
		if n < 0 {
			return 0, fmt.Errorf("age must not be negative")
		}
		return time.Duration(n * 24 * float64(time.Hour)), nil
	}

	age, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if age < 0 {
		return 0, fmt.Errorf("age must not be negative")
	}
	return age, nil
}

// runClean performs the cleanup run and prints a report.
func runClean(opts cleanOptions) int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dir := opts.dir
	if dir == "" {
		dir = os.TempDir()
	}

	c := cleaner.New()
	result, err := c.Clean(ctx, cleaner.Request{
		Dir:      dir,
		MaxAge:   opts.age,
		Patterns: opts.patterns,
		DryRun:   opts.dryRun,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cleantmp: %v\n", err)
		return exitError
	}

	printReport(dir, opts.dryRun, result)

	if len(result.Failed) > 0 {
		return exitError
	}
	return exitOK
}

// printReport renders the cleanup outcome.
func printReport(dir string, dryRun bool, result *cleaner.Result) {
	if dryRun {
		fmt.Printf("Temp cleanup (dry-run): %s\n", dir)
	} else {
		fmt.Printf("Temp cleanup: %s\n", dir)
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	fmt.Printf("%s %d file(s), %s\n", verb, len(result.Removed), humanBytes(result.FreedBytes))
	for _, entry := range result.Removed {
		fmt.Printf("  %s (age %s)\n", entry.Path, humanAge(entry.Age))
	}

	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped %d recent file(s)\n", len(result.Skipped))
	}

	if len(result.Failed) > 0 {
		fmt.Printf("Failed to remove %d file(s):\n", len(result.Failed))
		for _, failure := range result.Failed {
			fmt.Printf("  %s: %v\n", failure.Path, failure.Err)
		}
	}
}

// humanBytes renders a byte count for the report.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// humanAge renders an age in whole days or hours.
func humanAge(age time.Duration) string {
	if age >= 24*time.Hour {
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
	return fmt.Sprintf("%dh", int(age.Hours()))
}
