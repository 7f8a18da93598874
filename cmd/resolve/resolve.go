package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ThaddeusVailCorbin/pathkit/internal/platform"
	"github.com/ThaddeusVailCorbin/pathkit/internal/resolver"
)

// resolveOptions holds the parsed command line.
type resolveOptions struct {
	showHelp    bool
	showVersion bool
	doctor      bool
	verbose     bool
	paths       []string
}

// parseArgs parses the resolve command line. Everything after -- is
// taken as a path, so paths beginning with a dash stay resolvable.
func parseArgs(args []string) (resolveOptions, error) {
	var opts resolveOptions

	pathsOnly := false
	for _, arg := range args {
		if pathsOnly {
			opts.paths = append(opts.paths, arg)
			continue
		}

		switch arg {
		case "--":
			pathsOnly = true
		case "--help", "-h":
			opts.showHelp = true
		case "--version":
			opts.showVersion = true
		case "--doctor":
			opts.doctor = true
		case "--verbose", "-v":
			opts.verbose = true
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return resolveOptions{}, fmt.Errorf("unknown option: %s", arg)
			}
			opts.paths = append(opts.paths, arg)
		}
	}

	return opts, nil
}

// runResolve canonicalizes the given paths and prints them to stdout.
// Zero paths is a valid call that prints nothing.
func runResolve(paths []string, verbose bool) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info := detectPlatform(ctx)

	opts := resolver.Options{}
	if verbose {
		opts.Logger = stderrLogger{}
	}
	r := resolver.NewWithOptions(info, opts)

	resolved, err := r.Resolve(ctx, paths)
	if err != nil {
		if errors.Is(err, resolver.ErrToolUnavailable) {
			fmt.Fprintf(os.Stderr, "resolve: no canonicalization tool found (tried %s)\n",
				candidateNames(info))
			return exitNoTool
		}
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		return exitError
	}

	for _, path := range resolved {
		fmt.Println(path)
	}
	return exitOK
}

// detectPlatform performs best-effort platform detection. A nil result
// is fine: the resolver then probes the full candidate list.
func detectPlatform(ctx context.Context) *platform.Info {
	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return nil
	}
	return info
}

// candidateNames renders the probe order for diagnostics.
func candidateNames(info *platform.Info) string {
	candidates := resolver.CandidatesFor(info)
	names := make([]string, len(candidates))
	for i, id := range candidates {
		names[i] = id.String()
	}
	return strings.Join(names, ", ")
}

// stderrLogger writes probe tracing to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, keysAndValues ...interface{}) {
	logLine("debug", msg, keysAndValues)
}

func (stderrLogger) Warn(msg string, keysAndValues ...interface{}) {
	logLine("warn", msg, keysAndValues)
}

func logLine(level, msg string, kv []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, "resolve: %s: %s", level, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(os.Stderr, b.String())
}
