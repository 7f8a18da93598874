package resolver

import "os/exec"

// Prober locates candidate tools on the executable search path.
// Following Go best practices: accept interfaces, return structs.
type Prober interface {
	// LookPath returns the absolute path of the named executable, or an
	// error if it is not installed.
	LookPath(name string) (string, error)
}

// execProber is the production Prober backed by the process PATH.
type execProber struct{}

func (execProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
