package ruleset

import (
	"sort"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// Set is a rule set: an optional user overlay in front of the built-in
// table. Overlay rules win when both define the same key. The zero value
// is usable and equivalent to Builtin().
type Set struct {
	overlay map[Key]*Rule
}

// Builtin returns a Set with no overlay.
func Builtin() *Set {
	return &Set{}
}

// Lookup returns the rule for a verb and OS pair, consulting the overlay
// before the built-in table.
func (s *Set) Lookup(command string, from, to platform.OS) (*Rule, bool) {
	key := NewKey(command, from, to)
	if s != nil && s.overlay != nil {
		if r, ok := s.overlay[key]; ok {
			return r, true
		}
	}
	r, ok := builtinRules[key]
	return r, ok
}

// Commands returns the sorted source verbs available for an OS pair,
// overlay and built-in combined.
func (s *Set) Commands(from, to platform.OS) []string {
	seen := make(map[string]struct{})
	for key := range builtinRules {
		if key.From == from && key.To == to {
			seen[key.Command] = struct{}{}
		}
	}
	if s != nil {
		for key := range s.overlay {
			if key.From == from && key.To == to {
				seen[key.Command] = struct{}{}
			}
		}
	}
	cmds := make([]string, 0, len(seen))
	for c := range seen {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return cmds
}

// add registers an overlay rule, replacing any previous overlay entry for
// the same key.
func (s *Set) add(key Key, r *Rule) {
	if s.overlay == nil {
		s.overlay = make(map[Key]*Rule)
	}
	s.overlay[key] = r
}

// OverlayLen reports how many overlay rules the set carries.
func (s *Set) OverlayLen() int {
	if s == nil {
		return 0
	}
	return len(s.overlay)
}
