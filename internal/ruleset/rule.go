// Package ruleset holds the command translation rules: which verb on one
// operating system corresponds to which verb on another, and how the flags
// map. A built-in table covers the common cmd.exe and Unix coreutils verbs;
// user rule files written in Lua can overlay or extend it.
package ruleset

import (
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// FlagRule maps a single flag from the source command's syntax to the
// target command's. An empty Target drops the flag silently.
type FlagRule struct {
	// Source is the flag as written on the source OS, e.g. "/s" or "-r".
	Source string `json:"source"`
	// Target is the replacement. It may contain multiple words
	// ("xcopy /s /e") which are emitted as separate tokens.
	Target string `json:"target"`
	// Description says what the flag does, for list output.
	Description string `json:"description,omitempty"`
}

// Rule maps a command verb from one OS to another, along with its flag
// table. Flag rules are ordered: the first match wins, so longer or more
// specific sources must precede shorter prefixes of themselves.
type Rule struct {
	// SourceCmd is the verb on the source OS, lowercase.
	SourceCmd string `json:"source_cmd"`
	// TargetCmd is the replacement, possibly multi-word ("rm -r").
	TargetCmd string `json:"target_cmd"`
	// Flags is the ordered flag table.
	Flags []FlagRule `json:"flags,omitempty"`
	// PreserveUnmapped keeps arguments with no flag rule instead of
	// dropping them.
	PreserveUnmapped bool `json:"preserve_unmapped"`
	// Notes is surfaced as a warning whenever the rule fires.
	Notes string `json:"notes,omitempty"`
}

// Key identifies a rule by verb and OS pair. Command is stored lowercase.
type Key struct {
	Command string
	From    platform.OS
	To      platform.OS
}

// NewKey builds a lookup key, lowercasing the verb.
func NewKey(command string, from, to platform.OS) Key {
	return Key{Command: strings.ToLower(command), From: from, To: to}
}

// newRule is the table-building constructor: unmapped flags are preserved
// unless a rule says otherwise.
func newRule(sourceCmd, targetCmd string, flags ...FlagRule) *Rule {
	return &Rule{
		SourceCmd:        sourceCmd,
		TargetCmd:        targetCmd,
		Flags:            flags,
		PreserveUnmapped: true,
	}
}

func flag(source, target string) FlagRule {
	return FlagRule{Source: source, Target: target}
}

func flagDesc(source, target, description string) FlagRule {
	return FlagRule{Source: source, Target: target, Description: description}
}
