package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// Translate rewrites a package manager invocation from one manager's syntax
// to another's. Identical source and target pass through unchanged. A
// leading "sudo" is kept only when the target operation needs it; flags are
// translated through the per-operation tables and unmapped flags are kept
// with a warning.
func Translate(input string, from, to platform.PackageManager) (*Result, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	if from == to {
		return newResult(trimmed, trimmed, from, to), nil
	}

	detected, operation, args, err := parseCommand(trimmed)
	if err != nil {
		return nil, err
	}

	mapping, ok := operationMappings[opKey{PM: to, Op: operation}]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedOperation, operation)
	}

	result := newResult("", trimmed, from, to)
	if detected != from {
		result.warnf("Command appears to be for %s but was specified as %s", detected, from)
	}
	result.RequiresSudo = mapping.RequiresSudo

	var sb strings.Builder
	if strings.HasPrefix(trimmed, "sudo ") && mapping.RequiresSudo {
		sb.WriteString("sudo ")
	}
	sb.WriteString(mapping.Command)

	var flags, packages []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "/") {
			flags = append(flags, arg)
		} else {
			packages = append(packages, arg)
		}
	}

	translated := translateFlags(flags, from, to, operation, result)
	if len(translated) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(translated, " "))
	}
	if len(packages) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(packages, " "))
	}

	result.Command = sb.String()
	if mapping.Notes != "" {
		result.Warnings = append(result.Warnings, mapping.Notes)
	}
	return result, nil
}

// TranslateAuto detects the source manager from the command itself and
// translates to the target.
func TranslateAuto(input string, to platform.PackageManager) (*Result, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	from, _, _, err := parseCommand(trimmed)
	if err != nil {
		return nil, err
	}
	return Translate(trimmed, from, to)
}

// translateFlags maps each flag through the pair's per-operation table.
// Exact matches may expand to multiple tokens; "--option=value" keeps its
// value. Unmapped flags are preserved with a warning.
func translateFlags(flags []string, from, to platform.PackageManager, operation Operation, result *Result) []string {
	mappings := flagMappings[flagKey{From: from, To: to, Op: operation}]

	var out []string
	for _, f := range flags {
		found := false
		for _, m := range mappings {
			if strings.EqualFold(f, m.Source) {
				if m.Target != "" {
					out = append(out, strings.Fields(m.Target)...)
				}
				found = true
				break
			}
			if name, value, hasValue := strings.Cut(f, "="); hasValue && name == m.Source {
				if m.Target != "" {
					if strings.Contains(m.Target, "=") {
						out = append(out, m.Target+"="+value)
					} else {
						out = append(out, m.Target, value)
					}
				}
				found = true
				break
			}
		}
		if !found {
			result.warnf("Flag '%s' has no direct equivalent in %s for %s operation", f, to, operation)
			out = append(out, f)
		}
	}
	return out
}
