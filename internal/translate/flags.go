package translate

import (
	"strings"

	"github.com/cmdx-tool/cmdx/internal/ruleset"
)

// translateFlags rewrites argument tokens through a rule's flag table.
// For each token the flag rules are scanned in declared order; the first
// match wins. A rule matches exactly (case-insensitive) or as a prefix of
// the token, in which case the remainder becomes the flag's value. An
// empty rule target drops the token silently. Tokens with no matching
// rule are kept or dropped per the rule's unmapped-flag policy, with a
// warning either way for flag-shaped tokens.
func translateFlags(args []string, rule *ruleset.Rule, result *Result) []string {
	var out []string

	for _, arg := range args {
		if rewriteToken(arg, rule, &out) {
			continue
		}

		if rule.PreserveUnmapped {
			out = append(out, arg)
			if strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "/") {
				result.warnf("Flag '%s' was not translated", arg)
				result.HadUnmappedFlags = true
			}
		} else {
			result.warnf("Flag '%s' was dropped", arg)
			result.HadUnmappedFlags = true
		}
	}

	return out
}

// rewriteToken applies the first matching flag rule to one token,
// appending the replacement tokens to out. Reports whether a rule matched.
func rewriteToken(arg string, rule *ruleset.Rule, out *[]string) bool {
	for _, fr := range rule.Flags {
		if strings.EqualFold(arg, fr.Source) {
			// Multi-word targets expand to separate tokens.
			*out = append(*out, strings.Fields(fr.Target)...)
			return true
		}

		if strings.HasPrefix(arg, fr.Source) {
			value := strings.TrimPrefix(arg, fr.Source)
			if fr.Target != "" {
				value = strings.TrimLeft(value, ":=")
				if value == "" {
					*out = append(*out, fr.Target)
				} else {
					*out = append(*out, fr.Target+" "+value)
				}
			}
			return true
		}
	}
	return false
}
