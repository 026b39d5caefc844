package schema

import (
	"github.com/alexisbeaulieu97/classy/pkg/variants"
)

// Options converts the document into build options. Conversion is lossless
// and never fails: fields the document omits become their zero values, so an
// unlinted document still builds (the core stays permissive).
func (d *Document) Options() variants.Options {
	if d == nil {
		return variants.Options{}
	}

	opts := variants.Options{
		Base:            d.Base.fragment(),
		Slots:           slotFragments(d.Slots),
		DefaultVariants: copyAnyMap(d.DefaultVariants),
	}

	if len(d.Variants) > 0 {
		opts.Variants = make(map[string]map[string]any, len(d.Variants))
		for name, values := range d.Variants {
			entries := make(map[string]any, len(values))
			for value, class := range values {
				entries[value] = class.fragment()
			}
			opts.Variants[name] = entries
		}
	}

	if len(d.CompoundVariants) > 0 {
		opts.CompoundVariants = make([]variants.CompoundVariant, len(d.CompoundVariants))
		for i, rule := range d.CompoundVariants {
			opts.CompoundVariants[i] = variants.CompoundVariant{
				When:  conditionValues(rule.When),
				Class: rule.Class.fragment(),
			}
		}
	}

	if len(d.CompoundSlots) > 0 {
		opts.CompoundSlots = make([]variants.CompoundSlot, len(d.CompoundSlots))
		for i, rule := range d.CompoundSlots {
			opts.CompoundSlots[i] = variants.CompoundSlot{
				Slots: append([]string(nil), rule.Slots...),
				When:  conditionValues(rule.When),
				Class: rule.Class.fragment(),
			}
		}
	}

	if d.Config != nil {
		opts.Config = &variants.Config{MergeConflicting: d.Config.MergeConflictingClasses}
	}

	return opts
}

func (c ClassList) fragment() any {
	if len(c) == 0 {
		return nil
	}
	return []string(c)
}

// fragment returns the per-slot mapping when the variant value is
// slot-shaped, the plain fragment otherwise.
func (v VariantClass) fragment() any {
	if v.Slots != nil {
		perSlot := make(map[string]any, len(v.Slots))
		for slot, class := range v.Slots {
			perSlot[slot] = class.fragment()
		}
		return perSlot
	}
	return v.Classes.fragment()
}

func slotFragments(slots map[string]ClassList) map[string]any {
	if slots == nil {
		return nil
	}
	out := make(map[string]any, len(slots))
	for name, class := range slots {
		out[name] = class.fragment()
	}
	return out
}

func conditionValues(conditions map[string]ConditionValue) map[string]any {
	if len(conditions) == 0 {
		return nil
	}
	out := make(map[string]any, len(conditions))
	for name, condition := range conditions {
		out[name] = condition.Value
	}
	return out
}

func copyAnyMap(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}
