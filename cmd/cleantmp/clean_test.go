package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantHelp     bool
		wantDryRun   bool
		wantDir      string
		wantAge      time.Duration
		wantPatterns []string
		wantErr      bool
	}{
		{
			name: "no args",
			args: []string{},
		},
		{
			name:     "help flag",
			args:     []string{"--help"},
			wantHelp: true,
		},
		{
			name:       "dry-run short",
			args:       []string{"-n"},
			wantDryRun: true,
		},
		{
			name:    "dir with value",
			args:    []string{"--dir", "/var/tmp"},
			wantDir: "/var/tmp",
		},
		{
			name:    "dir missing value",
			args:    []string{"--dir"},
			wantErr: true,
		},
		{
			name:    "age in hours",
			args:    []string{"--age", "72h"},
			wantAge: 72 * time.Hour,
		},
		{
			name:    "age in days",
			args:    []string{"--age", "7d"},
			wantAge: 7 * 24 * time.Hour,
		},
		{
			name:    "age invalid",
			args:    []string{"--age", "soon"},
			wantErr: true,
		},
		{
			name:    "age negative",
			args:    []string{"--age", "-1h"},
			wantErr: true,
		},
		{
			name:         "repeated patterns",
			args:         []string{"--pattern", "*.tmp", "--pattern", "*.swp"},
			wantPatterns: []string{"*.tmp", "*.swp"},
		},
		{
			name:    "unknown option",
			args:    []string{"--bogus"},
			wantErr: true,
		},
		{
			name:       "combined",
			args:       []string{"--dry-run", "--dir", "/tmp", "--age", "2d"},
			wantDryRun: true,
			wantDir:    "/tmp",
			wantAge:    48 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if opts.showHelp != tt.wantHelp {
				t.Errorf("showHelp = %v, want %v", opts.showHelp, tt.wantHelp)
			}
			if opts.dryRun != tt.wantDryRun {
				t.Errorf("dryRun = %v, want %v", opts.dryRun, tt.wantDryRun)
			}
			if opts.dir != tt.wantDir {
				t.Errorf("dir = %q, want %q", opts.dir, tt.wantDir)
			}
			if opts.age != tt.wantAge {
				t.Errorf("age = %v, want %v", opts.age, tt.wantAge)
			}
			if len(opts.patterns) != len(tt.wantPatterns) {
				t.Fatalf("patterns = %v, want %v", opts.patterns, tt.wantPatterns)
			}
			for i := range tt.wantPatterns {
				if opts.patterns[i] != tt.wantPatterns[i] {
					t.Errorf("patterns[%d] = %q, want %q", i, opts.patterns[i], tt.wantPatterns[i])
				}
			}
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"hours", "24h", 24 * time.Hour, false},
		{"minutes", "90m", 90 * time.Minute, false},
		{"whole days", "3d", 72 * time.Hour, false},
		{"fractional days", "0.5d", 12 * time.Hour, false},
		{"bare number", "7", 0, true},
		{"negative days", "-1d", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAge(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAge(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAge(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRunClean_DryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stale.tmp")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	old := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	code := runClean(cleanOptions{dir: dir, dryRun: true})
	if code != exitOK {
		t.Fatalf("runClean() = %d, want %d", code, exitOK)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dry run removed %s", path)
	}
}

func TestRunClean_MissingDir(t *testing.T) {
	code := runClean(cleanOptions{dir: filepath.Join(t.TempDir(), "nope")})
	if code != exitError {
		t.Errorf("runClean() = %d, want %d", code, exitError)
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}

	for _, tt := range tests {
		if got := humanBytes(tt.input); got != tt.want {
			t.Errorf("humanBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
