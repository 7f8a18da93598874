package resolver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/ThaddeusVailCorbin/pathkit/internal/platform"
)

// CandidatesFor returns the tool candidates for the given platform, in
// probe priority order.
//
// The order prefers explicitly-installed GNU builds over whatever the
// system ships: gnureadlink, then greadlink, then plain readlink. On
// macOS the plain readlink candidate is dropped because the BSD
// readlink there has no -f canonicalization mode.
func CandidatesFor(info *platform.Info) []ToolID {
	if info != nil && info.IsMacOS() {
		return []ToolID{ToolGNUReadlink, ToolGReadlink}
	}
	return []ToolID{ToolGNUReadlink, ToolGReadlink, ToolReadlink}
}

// Options configures optional Resolver dependencies.
type Options struct {
	// Prober locates candidate executables. Defaults to the process PATH.
	Prober Prober
	// Logger receives probe tracing. Defaults to a no-op logger.
	Logger Logger
}

// Resolver canonicalizes filesystem paths via an external tool.
//
// The tool choice is made on first use and memoized for the lifetime
// of the Resolver; construct one per process.
type Resolver struct {
	prober     Prober
	logger     Logger
	candidates []ToolID

	mu    sync.Mutex
	state toolState
	tool  Tool
}

// New creates a Resolver for the given platform using the process PATH.
func New(info *platform.Info) *Resolver {
	return NewWithOptions(info, Options{})
}

// NewWithOptions creates a Resolver with injected dependencies.
func NewWithOptions(info *platform.Info, opts Options) *Resolver {
	if opts.Prober == nil {
		opts.Prober = execProber{}
	}
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}
	return &Resolver{
		prober:     opts.Prober,
		logger:     opts.Logger,
		candidates: CandidatesFor(info),
	}
}

// Resolve canonicalizes the given paths, returning one absolute,
// symlink-free path per input, in input order.
//
// Zero paths is a no-op: an empty slice is returned without probing
// for or invoking any tool. If no supported tool is installed,
// ErrToolUnavailable is returned and no paths are resolved.
func (r *Resolver) Resolve(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve cancelled: %w", err)
	}

	tool, err := r.selectTool()
	if err != nil {
		return nil, err
	}

	// Single invocation for the whole batch; GNU readlink -f prints one
	// canonical path per argument. The -- terminator keeps paths that
	// begin with a dash from being parsed as flags.
	args := append([]string{"-f", "--"}, paths...)
	cmd := exec.CommandContext(ctx, tool.Path, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, translateToolError(tool, err)
	}

	resolved := splitLines(string(out))
	if len(resolved) != len(paths) {
		// A path with an embedded newline would desync the output; the
		// batch protocol cannot represent it.
		return nil, fmt.Errorf("%s returned %d paths for %d inputs", tool.ID, len(resolved), len(paths))
	}

	return resolved, nil
}

// ProbeTool forces tool selection and returns the outcome. Resolve
// performs this implicitly; the doctor report uses it to inspect the
// selection without resolving anything.
func (r *Resolver) ProbeTool() (Tool, error) {
	return r.selectTool()
}

// SelectedTool returns the memoized tool choice, if the probe has run
// and found one.
func (r *Resolver) SelectedTool() (Tool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != stateResolved {
		return Tool{}, false
	}
	return r.tool, true
}

// selectTool returns the memoized tool, probing the candidates on
// first call. Both terminal states are sticky: once resolved the probe
// never reruns, and once unavailable every later call fails without
// touching the search path again.
func (r *Resolver) selectTool() (Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateResolved:
		return r.tool, nil
	case stateUnavailable:
		return Tool{}, ErrToolUnavailable
	}

	for _, id := range r.candidates {
		path, err := r.prober.LookPath(id.String())
		if err != nil {
			r.logger.Debug("candidate not installed", "tool", id.String())
			continue
		}
		r.logger.Debug("candidate selected", "tool", id.String(), "path", path)
		r.state = stateResolved
		r.tool = Tool{ID: id, Path: path}
		return r.tool, nil
	}

	r.logger.Warn("no canonicalization tool installed", "candidates", len(r.candidates))
	r.state = stateUnavailable
	return Tool{}, ErrToolUnavailable
}

// translateToolError maps a tool invocation failure to an error that
// carries the tool's own diagnostic output where available.
func translateToolError(tool Tool, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := strings.TrimSpace(string(exitErr.Stderr))
		if detail != "" {
			return fmt.Errorf("%s failed: %s", tool.ID, detail)
		}
		return fmt.Errorf("%s failed: %w", tool.ID, err)
	}
	return fmt.Errorf("invoke %s: %w", tool.ID, err)
}

// splitLines splits tool output into lines, dropping the trailing
// newline the tool always prints.
func splitLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
