package variants

import (
	"strings"
)

// groupResolver is a deterministic stand-in for the external conflict
// resolver: classes listed in groups conflict with each other and the last
// occurrence wins, everything else passes through.
type groupResolver struct {
	groups map[string]string
}

func (r groupResolver) Merge(classes string) string {
	type entry struct {
		token string
		dead  bool
	}

	tokens := strings.Fields(classes)
	entries := make([]*entry, 0, len(tokens))
	last := make(map[string]*entry)

	for _, token := range tokens {
		group, ok := r.groups[token]
		if !ok {
			group = token
		}
		if prev, seen := last[group]; seen {
			prev.dead = true
		}
		e := &entry{token: token}
		last[group] = e
		entries = append(entries, e)
	}

	var out []string
	for _, e := range entries {
		if !e.dead {
			out = append(out, e.token)
		}
	}
	return strings.Join(out, " ")
}

// paddingResolver conflicts the p-* spacing classes used across the tests.
func paddingResolver() groupResolver {
	return groupResolver{groups: map[string]string{
		"p-2": "padding",
		"p-4": "padding",
		"p-6": "padding",
		"p-8": "padding",

		"text-red-500":   "text-color",
		"text-green-500": "text-color",
		"text-blue-500":  "text-color",
	}}
}

// plainConfig disables conflict merging so tests can assert exact joined
// output without touching the shared resolver.
func plainConfig() *Config {
	disabled := false
	return &Config{MergeConflicting: &disabled}
}

func mergeConfig(resolver groupResolver) *Config {
	return &Config{Resolver: resolver}
}
