package translate

import "strings"

// ParseCommand splits a command line into a lowercase verb and its raw
// argument tokens. Splitting is whitespace-based and quoting-unaware:
// quoted arguments containing spaces come back as multiple tokens.
func ParseCommand(input string) (string, []string) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// compoundOperators are the shell operators recognized between segments of
// a compound command. Bare & is not treated as an operator.
var compoundOperators = []string{"&&", "||", ";", "|"}

func isOperator(tok string) bool {
	for _, op := range compoundOperators {
		if tok == op {
			return true
		}
	}
	return false
}

// SplitCompound splits a command line into segments and operators, in
// encounter order. Two-character operators && and || are matched before
// the single-character ; and |, so "a && b" yields ["a ", "&&", " b"],
// never a stray "&". Segments keep their surrounding whitespace; callers
// trim.
func SplitCompound(input string) []string {
	var parts []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	runes := []rune(input)
	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			two := string(runes[i : i+2])
			if two == "&&" || two == "||" {
				flush()
				parts = append(parts, two)
				i += 2
				continue
			}
		}
		if runes[i] == '|' || runes[i] == ';' {
			flush()
			parts = append(parts, string(runes[i]))
			i++
			continue
		}
		current.WriteRune(runes[i])
		i++
	}
	flush()

	return parts
}
