// Package translate implements the command, path, environment variable,
// and script translation engine. All entry points are pure: they take the
// input plus an OS pair and return a result carrying the rewritten text
// and any warnings; nothing is executed.
package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
	"github.com/cmdx-tool/cmdx/internal/ruleset"
)

// Command translates a single command line from one OS to another using
// the built-in rule table.
//
// The decision order, first match wins:
//  1. blank input: ErrEmptyCommand
//  2. same OS pair: passthrough, no warnings
//  3. verb native to the target but not the source: passthrough + warning
//  4. verb native to both: flag translation when a rule exists, else a
//     silent passthrough
//  5. rule lookup: translate verb and flags, append rule notes
//  6. both OSes Unix-like: passthrough + compatibility warning
//  7. verb recognizable as a target-OS command: passthrough + warning
//  8. otherwise ErrCommandNotFound
func Command(input string, from, to platform.OS) (*Result, error) {
	return CommandWith(input, from, to, ruleset.Builtin())
}

// CommandWith is Command with a caller-supplied rule set, used when a
// Lua rule overlay is loaded.
func CommandWith(input string, from, to platform.OS, rules *ruleset.Set) (*Result, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	if from == to {
		return newResult(trimmed, trimmed, from, to), nil
	}

	verb, args := ParseCommand(trimmed)
	if verb == "" {
		return nil, ErrEmptyCommand
	}

	if ruleset.IsNative(verb, to) && !ruleset.IsNative(verb, from) {
		result := newResult(trimmed, trimmed, from, to)
		result.warnf("Command '%s' is already in %s format, passed through unchanged", verb, to)
		return result, nil
	}

	if ruleset.IsNative(verb, to) && ruleset.IsNative(verb, from) {
		rule, ok := rules.Lookup(verb, from, to)
		if !ok {
			return newResult(trimmed, trimmed, from, to), nil
		}
		result := newResult("", trimmed, from, to)
		result.Command = assemble(rule.TargetCmd, translateFlags(args, rule, result))
		return result, nil
	}

	rule, ok := rules.Lookup(verb, from, to)
	if !ok {
		if from.IsUnixLike() && to.IsUnixLike() {
			result := newResult(trimmed, trimmed, from, to)
			result.warnf("Command '%s' passed through (Unix-like OS compatibility assumed)", verb)
			return result, nil
		}

		if ruleset.IsKnownTarget(verb, to) {
			result := newResult(trimmed, trimmed, from, to)
			result.warnf("Command '%s' appears to already be a %s command, passed through unchanged", verb, to)
			return result, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, verb)
	}

	result := newResult("", trimmed, from, to)
	result.Command = assemble(rule.TargetCmd, translateFlags(args, rule, result))
	if rule.Notes != "" {
		result.Warnings = append(result.Warnings, rule.Notes)
	}
	return result, nil
}

// assemble joins a target verb with its translated argument tokens.
func assemble(targetCmd string, args []string) string {
	if len(args) == 0 {
		return targetCmd
	}
	return targetCmd + " " + strings.Join(args, " ")
}

// CommandString is Command keyed by OS names ("windows", "darwin", ...).
func CommandString(input, from, to string) (*Result, error) {
	fromOS, ok := platform.ParseOS(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOS, from)
	}
	toOS, ok := platform.ParseOS(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOS, to)
	}
	return Command(input, fromOS, toOS)
}

// Compound translates a command line that may chain several commands with
// &&, ||, ;, or |. Each segment is translated independently; a segment
// with no translation is kept verbatim with a warning rather than failing
// the whole line. Other errors abort.
func Compound(input string, from, to platform.OS) (*Result, error) {
	return CompoundWith(input, from, to, ruleset.Builtin())
}

// CompoundWith is Compound with a caller-supplied rule set.
func CompoundWith(input string, from, to platform.OS, rules *ruleset.Set) (*Result, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	if from == to {
		return newResult(trimmed, trimmed, from, to), nil
	}

	parts := SplitCompound(trimmed)
	if len(parts) == 1 {
		return CommandWith(trimmed, from, to, rules)
	}

	result := newResult("", trimmed, from, to)
	var translated []string

	for _, part := range parts {
		seg := strings.TrimSpace(part)
		switch {
		case isOperator(seg):
			translated = append(translated, seg)
		case seg == "":
			// dropped
		default:
			segResult, err := CommandWith(seg, from, to, rules)
			if err == nil {
				translated = append(translated, segResult.Command)
				result.Warnings = append(result.Warnings, segResult.Warnings...)
				result.HadUnmappedFlags = result.HadUnmappedFlags || segResult.HadUnmappedFlags
				continue
			}
			if errors.Is(err, ErrCommandNotFound) {
				// Unknown verbs stay as-is; they may be user programs.
				translated = append(translated, seg)
				verb, _ := ParseCommand(seg)
				result.warnf("Command '%s' was not translated", verb)
				continue
			}
			return nil, err
		}
	}

	result.Command = strings.Join(translated, " ")
	return result, nil
}

// Batch translates several independent command lines against one OS pair.
// Results and errors are positional.
func Batch(inputs []string, from, to platform.OS) ([]*Result, []error) {
	results := make([]*Result, len(inputs))
	errs := make([]error, len(inputs))
	for i, input := range inputs {
		results[i], errs[i] = Command(input, from, to)
	}
	return results, errs
}

// Full runs the whole text pipeline: environment variable references are
// rewritten first, then the line is translated as a compound command.
func Full(input string, from, to platform.OS) (*Result, error) {
	result, err := Compound(EnvVars(input, from, to), from, to)
	if err != nil {
		return nil, err
	}
	result.Original = strings.TrimSpace(input)
	return result, nil
}
