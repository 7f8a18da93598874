package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// CreateCanonTool creates a shell script that mimics the readlink -f
// batch contract: it strips the -f and -- arguments and prints one
// line per remaining path, tagged with the tool name so tests can see
// which candidate ran. It also answers --version.
func CreateCanonTool(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then
    echo "%s (pathkit test tool) 9.0"
    exit 0
fi
for arg in "$@"; do
    case "$arg" in
        -f|--) ;;
        *) echo "%s:$arg" ;;
    esac
done
`, name, name)

	err := os.WriteFile(path, []byte(script), 0755)
	if err != nil {
		t.Fatalf("failed to create canon tool: %v", err)
	}

	return path
}

// SetupToolPATH creates a directory containing the named mock tools
// and returns it for use as the sole PATH entry.
func SetupToolPATH(t *testing.T, names ...string) string {
	t.Helper()

	tmpDir := t.TempDir()
	for _, name := range names {
		CreateCanonTool(t, tmpDir, name)
	}

	return tmpDir
}
