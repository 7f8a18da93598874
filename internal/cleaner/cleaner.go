// Package cleaner removes stale files from a temporary directory.
//
// It scans a single directory (no recursion, matching the shell habit
// it replaces), removes regular files older than a cutoff that match
// one of the requested glob patterns, and reports what it did.
// Directories, special files, and young files are never touched.
package cleaner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultMaxAge is the cutoff used when the request does not set one.
const DefaultMaxAge = 7 * 24 * time.Hour

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Request contains the parameters for a cleanup run.
type Request struct {
	// Dir is the directory to scan. Defaults to os.TempDir().
	Dir string
	// MaxAge is the minimum age of files to remove. Defaults to DefaultMaxAge.
	MaxAge time.Duration
	// Patterns are glob patterns matched against file names. Defaults to ["*"].
	Patterns []string
	// DryRun reports what would be removed without removing anything.
	DryRun bool
}

// Entry describes one file seen during a cleanup run.
type Entry struct {
	Path string
	Size int64
	Age  time.Duration
}

// Failure records a file that matched but could not be removed.
type Failure struct {
	Path string
	Err  error
}

// Result contains the outcome of a cleanup run.
type Result struct {
	// Removed lists files deleted (or, in dry-run mode, files that would be).
	Removed []Entry
	// Skipped lists files that matched a pattern but are younger than MaxAge.
	Skipped []Entry
	// Failed lists files that matched but could not be removed.
	Failed []Failure
	// FreedBytes is the total size of the Removed entries.
	FreedBytes int64
}

// Cleaner performs temp-file cleanup runs.
type Cleaner struct {
	clock Clock
}

// New creates a Cleaner using the system clock.
func New() *Cleaner {
	return NewWithClock(realClock{})
}

// NewWithClock creates a Cleaner with an injected clock.
func NewWithClock(clock Clock) *Cleaner {
	return &Cleaner{clock: clock}
}

// Clean scans the requested directory and removes stale matching files.
//
// Unremovable files are recorded in Result.Failed rather than aborting
// the run; the only fatal errors are an unreadable directory, a
// malformed pattern, and context cancellation.
func (c *Cleaner) Clean(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cleanup cancelled: %w", err)
	}

	dir := req.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	maxAge := req.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	patterns := req.Patterns
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}

	// Reject malformed patterns before touching anything.
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, "x"); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	now := c.clock.Now()
	result := &Result{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cleanup cancelled: %w", err)
		}

		if entry.IsDir() {
			continue
		}

		if !matchAny(patterns, entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Raced with another process deleting the file.
			if os.IsNotExist(err) {
				continue
			}
			result.Failed = append(result.Failed, Failure{
				Path: filepath.Join(dir, entry.Name()),
				Err:  err,
			})
			continue
		}

		// Only regular files; sockets, fifos, and symlinks stay.
		if !info.Mode().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		age := now.Sub(info.ModTime())
		item := Entry{Path: path, Size: info.Size(), Age: age}

		if age < maxAge {
			result.Skipped = append(result.Skipped, item)
			continue
		}

		if !req.DryRun {
			if err := os.Remove(path); err != nil {
				result.Failed = append(result.Failed, Failure{Path: path, Err: err})
				continue
			}
		}

		result.Removed = append(result.Removed, item)
		result.FreedBytes += item.Size
	}

	return result, nil
}

// matchAny reports whether the name matches any of the patterns.
// Patterns are validated by Clean before this is called.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
