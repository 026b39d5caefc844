// Package variants composes utility-class strings from declarative component
// definitions: a base class list, named variants selected by prop values,
// optional slots, compound rules, and one-shot extension of a parent
// definition. Resolution is permissive: unknown variant names, unknown
// values, and missing slots contribute no classes instead of failing.
package variants

// PropClass is the reserved prop key whose fragment is appended last, giving
// it the highest precedence in conflict resolution.
const PropClass = "class"

// Props carries caller-supplied variant selections (string or bool values)
// plus the reserved "class" override fragment. A nil Props is valid.
type Props map[string]any

// CompoundVariant applies extra classes when every condition in When holds.
type CompoundVariant struct {
	// When maps variant names to a required value, or to a list of
	// acceptable values. An empty When matches unconditionally.
	When map[string]any
	// Class is a class fragment, or a slot-name to fragment mapping for
	// slot components.
	Class any
}

// CompoundSlot applies a class fragment to each slot named in Slots when
// every condition in When holds.
type CompoundSlot struct {
	Slots []string
	When  map[string]any
	Class any
}

// Options is the raw input to Build. Every field is optional; the zero value
// yields a definition with an empty base and no variants.
type Options struct {
	// Base is the class fragment applied unconditionally to a component
	// without slots.
	Base any
	// Slots maps slot names to their base fragments. A component with
	// slots resolves through ResolveSlots instead of Resolve.
	Slots map[string]any
	// Variants maps variant name -> value -> fragment. For slot
	// components a value may instead map slot names to fragments.
	Variants map[string]map[string]any
	// DefaultVariants supplies the value used when props omit a variant.
	DefaultVariants map[string]any
	// CompoundVariants and CompoundSlots are evaluated in declaration
	// order; later rules layer on top of earlier ones.
	CompoundVariants []CompoundVariant
	CompoundSlots    []CompoundSlot
	// Extend merges a previously built definition underneath these
	// options. The merge happens once, at build time.
	Extend *Definition
	// Config tunes fragment merging; nil means defaults.
	Config *Config
}

// Definition is an immutable, fully merged component description. It is
// created by Build, never mutated afterwards, and safe for concurrent use.
type Definition struct {
	base             any
	slots            map[string]any
	variants         map[string]map[string]any
	defaultVariants  map[string]any
	compoundVariants []CompoundVariant
	compoundSlots    []CompoundSlot
	config           resolvedConfig
}

// HasSlots reports whether the definition declares slots, in which case
// ResolveSlots is the resolution entry point.
func (d Definition) HasSlots() bool {
	return len(d.slots) > 0
}
