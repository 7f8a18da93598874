package resolver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DetectVersion reports the version of a probed tool by executing it
// with --version and returning the first line of output.
//
// This is diagnostic only (the doctor report); resolution never needs
// the tool version.
func DetectVersion(ctx context.Context, tool Tool) (string, error) {
	cmd := exec.CommandContext(ctx, tool.Path, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("detect version for %s: %w", tool.ID, err)
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty version output from %s", tool.ID)
	}

	return line, nil
}
