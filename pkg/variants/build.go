package variants

import (
	"github.com/alexisbeaulieu97/classy/pkg/classes"
)

// Build constructs an immutable Definition from opts, merging with
// opts.Extend when present. Inputs are value-copied so later mutation of
// opts cannot affect the definition. Malformed or missing fields degrade to
// empty values; Build never fails.
func Build(opts Options) Definition {
	cfg := resolveConfig(opts.Config)

	d := Definition{
		base:             copyFragment(opts.Base),
		slots:            copyFragmentMap(opts.Slots),
		variants:         copyVariants(opts.Variants),
		defaultVariants:  copyValueMap(opts.DefaultVariants),
		compoundVariants: copyCompoundVariants(opts.CompoundVariants),
		compoundSlots:    copyCompoundSlots(opts.CompoundSlots),
		config:           cfg,
	}

	parent := opts.Extend
	if parent == nil {
		return d
	}

	if len(classes.Flatten(parent.base)) > 0 {
		d.base = cfg.merge(parent.base, opts.Base)
	}

	if len(parent.slots) > 0 {
		merged := copyFragmentMap(parent.slots)
		for name, fragment := range opts.Slots {
			if parentFragment, ok := merged[name]; ok {
				merged[name] = cfg.merge(parentFragment, fragment)
			} else {
				merged[name] = copyFragment(fragment)
			}
		}
		d.slots = merged
	}

	if len(parent.variants) > 0 {
		merged := copyVariants(parent.variants)
		for name, values := range opts.Variants {
			if merged[name] == nil {
				merged[name] = make(map[string]any, len(values))
			}
			for value, fragment := range values {
				merged[name][value] = copyFragment(fragment)
			}
		}
		d.variants = merged
	}

	if len(parent.defaultVariants) > 0 {
		merged := copyValueMap(parent.defaultVariants)
		for name, value := range opts.DefaultVariants {
			merged[name] = value
		}
		d.defaultVariants = merged
	}

	// Parent rules run first so child rules can override them at merge time.
	if len(parent.compoundVariants) > 0 {
		d.compoundVariants = append(copyCompoundVariants(parent.compoundVariants), d.compoundVariants...)
	}
	if len(parent.compoundSlots) > 0 {
		d.compoundSlots = append(copyCompoundSlots(parent.compoundSlots), d.compoundSlots...)
	}

	return d
}

func copyFragment(fragment any) any {
	switch value := fragment.(type) {
	case []string:
		out := make([]string, len(value))
		copy(out, value)
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = copyFragment(item)
		}
		return out
	case map[string]any:
		return copyFragmentMap(value)
	default:
		return fragment
	}
}

func copyFragmentMap(fragments map[string]any) map[string]any {
	if fragments == nil {
		return nil
	}
	out := make(map[string]any, len(fragments))
	for name, fragment := range fragments {
		out[name] = copyFragment(fragment)
	}
	return out
}

func copyVariants(variants map[string]map[string]any) map[string]map[string]any {
	if variants == nil {
		return nil
	}
	out := make(map[string]map[string]any, len(variants))
	for name, values := range variants {
		out[name] = copyFragmentMap(values)
	}
	return out
}

func copyValueMap(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}

func copyCompoundVariants(rules []CompoundVariant) []CompoundVariant {
	if rules == nil {
		return nil
	}
	out := make([]CompoundVariant, len(rules))
	for i, rule := range rules {
		out[i] = CompoundVariant{
			When:  copyConditionMap(rule.When),
			Class: copyFragment(rule.Class),
		}
	}
	return out
}

// copyConditionMap deep-copies condition values, which may be lists of
// acceptable values.
func copyConditionMap(conditions map[string]any) map[string]any {
	if conditions == nil {
		return nil
	}
	out := make(map[string]any, len(conditions))
	for name, value := range conditions {
		out[name] = copyFragment(value)
	}
	return out
}

func copyCompoundSlots(rules []CompoundSlot) []CompoundSlot {
	if rules == nil {
		return nil
	}
	out := make([]CompoundSlot, len(rules))
	for i, rule := range rules {
		slots := make([]string, len(rule.Slots))
		copy(slots, rule.Slots)
		out[i] = CompoundSlot{
			Slots: slots,
			When:  copyConditionMap(rule.When),
			Class: copyFragment(rule.Class),
		}
	}
	return out
}
