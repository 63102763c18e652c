// Package pkgmgr translates package manager invocations between Linux
// distributions: "apt install -y vim" becomes "pacman -S --noconfirm vim",
// and so on. Each manager has an operation table mapping the nine common
// operations to its syntax, plus per-operation flag tables for the pairs
// where flags differ.
package pkgmgr

import (
	"errors"
	"fmt"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// Operation is one of the package management operations cmdx understands.
type Operation int

const (
	Install Operation = iota
	Remove
	Update
	Upgrade
	Search
	Info
	List
	Clean
	AutoRemove
)

var operationNames = [...]string{
	Install:    "install",
	Remove:     "remove",
	Update:     "update",
	Upgrade:    "upgrade",
	Search:     "search",
	Info:       "info",
	List:       "list",
	Clean:      "clean",
	AutoRemove: "autoremove",
}

// String returns the lowercase operation name.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[o]
}

// Sentinel errors returned by the package translation entry points. Wrapped
// values carry the offending command or operation; discriminate with
// errors.Is.
var (
	// ErrEmptyCommand is returned for blank input.
	ErrEmptyCommand = errors.New("empty command provided")
	// ErrNotPackageManagerCommand is returned when the verb is not a
	// recognized package manager.
	ErrNotPackageManagerCommand = errors.New("not a recognized package manager command")
	// ErrUnsupportedOperation is returned when the operation token is not
	// recognized for the source manager, or the target manager has no
	// mapping for the operation.
	ErrUnsupportedOperation = errors.New("operation not supported by target package manager")
	// ErrSameManager exists for callers that want to treat identical source
	// and target as an error. Translate itself passes same-manager input
	// through.
	ErrSameManager = errors.New("source and target package managers are the same")
)

// Result is the outcome of one package command translation.
type Result struct {
	// Command is the translated command line.
	Command string `json:"command"`
	// Original is the trimmed input.
	Original string `json:"original"`
	// From is the source package manager.
	From platform.PackageManager `json:"from_pm"`
	// To is the target package manager.
	To platform.PackageManager `json:"to_pm"`
	// Warnings notes unmapped flags, manager mismatches, and table notes.
	Warnings []string `json:"warnings,omitempty"`
	// RequiresSudo reports that the target operation usually needs
	// elevated privileges.
	RequiresSudo bool `json:"requires_sudo"`
}

func newResult(command, original string, from, to platform.PackageManager) *Result {
	return &Result{Command: command, Original: original, From: from, To: to}
}

// String returns the translated command.
func (r *Result) String() string {
	return r.Command
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
