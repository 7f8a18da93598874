// Package resolver turns filesystem paths into their canonical absolute
// form by delegating to whichever external canonicalization tool is
// installed on the host.
//
// The probe for an installed tool runs once per process and the choice
// is memoized, including the negative result: a host without any
// supported tool stays unavailable for the lifetime of the Resolver.
package resolver

import "errors"

// ToolID identifies a supported external canonicalization tool.
type ToolID string

const (
	// ToolGNUReadlink is a GNU readlink installed under an explicit name.
	ToolGNUReadlink ToolID = "gnureadlink"
	// ToolGReadlink is GNU readlink from Homebrew/MacPorts coreutils.
	ToolGReadlink ToolID = "greadlink"
	// ToolReadlink is the system readlink.
	ToolReadlink ToolID = "readlink"
)

// String returns the executable name of the tool.
func (t ToolID) String() string {
	return string(t)
}

// Tool describes a probed canonicalization tool.
type Tool struct {
	ID   ToolID // candidate that matched
	Path string // absolute path reported by the executable search
}

// ErrToolUnavailable is returned when no supported canonicalization
// tool is installed on the host.
var ErrToolUnavailable = errors.New("no supported canonicalization tool available")

// toolState tracks the memoized probe outcome. It transitions exactly
// once, from stateUnresolved to one of the terminal states.
type toolState int

const (
	stateUnresolved toolState = iota
	stateResolved
	stateUnavailable
)
