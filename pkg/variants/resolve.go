package variants

import (
	"sort"
	"strconv"
)

// SlotResolver computes the final class string for a single slot. The
// slotProps overlay the props passed to ResolveSlots for variant selection,
// and their "class" fragment is appended last.
type SlotResolver func(slotProps Props) string

// Resolve computes the class string for a whole component: base, then
// matching variants, then matching compound variants in declaration order,
// then the props "class" override last. Unknown variant names and values
// contribute nothing. Slot-shaped fragments are skipped here; slot
// components resolve through ResolveSlots.
func (d Definition) Resolve(props Props) string {
	fragments := make([]any, 0, 2+len(d.variants)+len(d.compoundVariants))
	fragments = append(fragments, d.base)

	for _, name := range d.variantNames() {
		fragment, ok := d.variantFragment(name, props)
		if !ok {
			continue
		}
		if _, slotShaped := fragment.(map[string]any); slotShaped {
			continue
		}
		fragments = append(fragments, fragment)
	}

	for _, rule := range d.compoundVariants {
		if !d.matches(rule.When, props) {
			continue
		}
		if _, slotShaped := rule.Class.(map[string]any); slotShaped {
			continue
		}
		fragments = append(fragments, rule.Class)
	}

	fragments = append(fragments, props[PropClass])

	result := d.config.merge(fragments...)
	d.config.logger.WithFields(map[string]any{"classes": result}).Debug("resolved component classes")
	return result
}

// ResolveSlots returns one resolver per declared slot. Each resolver closes
// over the definition, the outer props, and its slot name; calling it with
// nil slotProps resolves the slot with the outer props alone.
func (d Definition) ResolveSlots(props Props) map[string]SlotResolver {
	resolvers := make(map[string]SlotResolver, len(d.slots))
	for name := range d.slots {
		slot := name
		resolvers[slot] = func(slotProps Props) string {
			return d.resolveSlot(slot, props, slotProps)
		}
	}
	return resolvers
}

func (d Definition) resolveSlot(slot string, outer, slotProps Props) string {
	props := overlayProps(outer, slotProps)

	fragments := make([]any, 0, 2+len(d.variants)+len(d.compoundVariants)+len(d.compoundSlots))
	fragments = append(fragments, d.slots[slot])

	for _, name := range d.variantNames() {
		fragment, ok := d.variantFragment(name, props)
		if !ok {
			continue
		}
		fragments = append(fragments, slotFragment(fragment, slot))
	}

	for _, rule := range d.compoundVariants {
		if d.matches(rule.When, props) {
			fragments = append(fragments, slotFragment(rule.Class, slot))
		}
	}

	for _, rule := range d.compoundSlots {
		if !containsSlot(rule.Slots, slot) {
			continue
		}
		if d.matches(rule.When, props) {
			fragments = append(fragments, rule.Class)
		}
	}

	fragments = append(fragments, slotProps[PropClass])

	result := d.config.merge(fragments...)
	d.config.logger.WithFields(map[string]any{"slot": slot, "classes": result}).Debug("resolved slot classes")
	return result
}

// variantFragment resolves a declared variant's effective value against
// props and looks up its fragment. The boolean is false when the variant
// contributes nothing.
func (d Definition) variantFragment(name string, props Props) (any, bool) {
	value, ok := d.effectiveValue(name, props)
	if !ok {
		return nil, false
	}
	fragment, ok := d.variants[name][value]
	return fragment, ok
}

// effectiveValue is props[name] when present and non-nil, else the declared
// default, normalized to the canonical string form. Only declared variant
// names are ever looked up, so arbitrary prop keys never become structural
// keys.
func (d Definition) effectiveValue(name string, props Props) (string, bool) {
	if value, ok := props[name]; ok && value != nil {
		return normalizeValue(value)
	}
	if value, ok := d.defaultVariants[name]; ok && value != nil {
		return normalizeValue(value)
	}
	return "", false
}

// normalizeValue maps a prop value to its canonical string form so boolean
// true and the string "true" select the same variant entry.
func normalizeValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// matches reports whether every condition holds for the effective values
// derived from props. An empty condition set matches unconditionally.
func (d Definition) matches(conditions map[string]any, props Props) bool {
	for name, required := range conditions {
		effective, ok := d.effectiveValue(name, props)
		if !ok {
			return false
		}
		if !valueMatches(required, effective) {
			return false
		}
	}
	return true
}

// valueMatches checks a single condition: a scalar must equal the effective
// value, a list matches when the effective value is a member.
func valueMatches(required any, effective string) bool {
	switch req := required.(type) {
	case []string:
		for _, item := range req {
			if item == effective {
				return true
			}
		}
		return false
	case []any:
		for _, item := range req {
			if normalized, ok := normalizeValue(item); ok && normalized == effective {
				return true
			}
		}
		return false
	default:
		normalized, ok := normalizeValue(required)
		return ok && normalized == effective
	}
}

// slotFragment extracts the fragment for one slot from a variant or compound
// entry. Entries that are not slot-shaped apply uniformly to every slot.
func slotFragment(fragment any, slot string) any {
	if perSlot, ok := fragment.(map[string]any); ok {
		return perSlot[slot]
	}
	return fragment
}

// variantNames returns declared variant names in a deterministic order.
// Individual variant fragments only interact through the final merge, so any
// fixed order preserves the documented precedence.
func (d Definition) variantNames() []string {
	names := make([]string, 0, len(d.variants))
	for name := range d.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func overlayProps(outer, overrides Props) Props {
	if len(overrides) == 0 {
		return outer
	}
	if len(outer) == 0 {
		return overrides
	}
	merged := make(Props, len(outer)+len(overrides))
	for name, value := range outer {
		merged[name] = value
	}
	for name, value := range overrides {
		merged[name] = value
	}
	return merged
}

func containsSlot(slots []string, slot string) bool {
	for _, name := range slots {
		if name == slot {
			return true
		}
	}
	return false
}
