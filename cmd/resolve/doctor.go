package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ThaddeusVailCorbin/pathkit/internal/platform"
	"github.com/ThaddeusVailCorbin/pathkit/internal/resolver"
)

// runDoctor reports the detected platform and the canonicalization
// tool the resolver would use, without resolving any paths.
func runDoctor() int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: platform detection failed: %v\n", err)
		info = nil
	}

	fmt.Println("Platform")
	if info != nil {
		fmt.Printf("  OS:       %s\n", info.OS)
		fmt.Printf("  Arch:     %s (%s)\n", info.Arch, info.ArchRaw)
		if info.Platform != "" {
			fmt.Printf("  Distro:   %s (%s) %s\n", info.Platform, info.Family, info.Version)
		}
	} else {
		fmt.Println("  unknown")
	}
	fmt.Println()

	r := resolver.New(info)
	fmt.Printf("Canonicalization tool (probe order: %s)\n", candidateNames(info))

	tool, err := r.ProbeTool()
	if err != nil {
		if errors.Is(err, resolver.ErrToolUnavailable) {
			fmt.Println("  Selected: none")
			fmt.Fprintln(os.Stderr, "resolve: no canonicalization tool installed")
			return exitNoTool
		}
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		return exitError
	}

	version, err := resolver.DetectVersion(ctx, tool)
	if err != nil {
		version = "unknown"
	}

	fmt.Printf("  Selected: %s\n", tool.ID)
	fmt.Printf("  Path:     %s\n", tool.Path)
	fmt.Printf("  Version:  %s\n", version)
	return exitOK
}
