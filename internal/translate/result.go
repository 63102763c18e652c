package translate

import (
	"fmt"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// Result is the outcome of one command translation. Warnings preserve the
// order in which they were raised.
type Result struct {
	// Command is the translated command line.
	Command string `json:"command"`
	// Original is the trimmed input.
	Original string `json:"original"`
	// From is the source OS.
	From platform.OS `json:"from_os"`
	// To is the target OS.
	To platform.OS `json:"to_os"`
	// Warnings notes passthroughs, dropped flags, and rule notes.
	Warnings []string `json:"warnings,omitempty"`
	// HadUnmappedFlags reports that at least one flag had no rule.
	HadUnmappedFlags bool `json:"had_unmapped_flags"`
}

func newResult(command, original string, from, to platform.OS) *Result {
	return &Result{Command: command, Original: original, From: from, To: to}
}

// String returns the translated command.
func (r *Result) String() string {
	return r.Command
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// PathResult is the outcome of one path translation.
type PathResult struct {
	// Path is the translated path.
	Path string `json:"path"`
	// Original is the trimmed input.
	Original string `json:"original"`
	// From is the source OS.
	From platform.OS `json:"from_os"`
	// To is the target OS.
	To platform.OS `json:"to_os"`
	// DriveTranslated reports that a drive letter or mount point was
	// rewritten.
	DriveTranslated bool `json:"drive_translated"`
	// Warnings notes lossy or convention-based mappings.
	Warnings []string `json:"warnings,omitempty"`
}

func newPathResult(path, original string, from, to platform.OS) *PathResult {
	return &PathResult{Path: path, Original: original, From: from, To: to}
}

// String returns the translated path.
func (r *PathResult) String() string {
	return r.Path
}
