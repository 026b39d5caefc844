// Package classes flattens and joins utility-class fragments. A fragment is a
// string of whitespace-separated class tokens, a slice of fragments, or nil;
// nested fragments are flattened left to right with empties dropped. Conflict
// resolution between tokens is delegated to a Resolver.
package classes

import "strings"

// Flatten expands fragments into an ordered token sequence. Nil fragments,
// empty strings, and unsupported value kinds contribute nothing.
func Flatten(fragments ...any) []string {
	var tokens []string
	appendTokens(&tokens, fragments)
	return tokens
}

func appendTokens(tokens *[]string, fragment any) {
	switch value := fragment.(type) {
	case nil:
	case string:
		*tokens = append(*tokens, strings.Fields(value)...)
	case []string:
		for _, item := range value {
			appendTokens(tokens, item)
		}
	case []any:
		for _, item := range value {
			appendTokens(tokens, item)
		}
	}
}

// Join flattens fragments and joins the tokens with single spaces, preserving
// order and duplicates. It never consults a Resolver.
func Join(fragments ...any) string {
	return strings.Join(Flatten(fragments...), " ")
}

// Merge flattens fragments and hands the ordered token sequence to r, whose
// contract is that later conflicting utility classes win over earlier ones.
// A nil r degrades to Join semantics.
func Merge(r Resolver, fragments ...any) string {
	tokens := Flatten(fragments...)
	if len(tokens) == 0 {
		return ""
	}
	joined := strings.Join(tokens, " ")
	if r == nil {
		return joined
	}
	return r.Merge(joined)
}
