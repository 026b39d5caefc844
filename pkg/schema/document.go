// Package schema decodes declarative YAML component documents into
// variants.Options and lints them for authoring mistakes. Decoding reads
// from bytes or readers only; the package performs no file I/O.
package schema

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is the YAML shape of a component definition. Every field is
// optional; an empty document converts to empty options.
type Document struct {
	Base             ClassList                          `yaml:"base,omitempty"`
	Slots            map[string]ClassList               `yaml:"slots,omitempty"`
	Variants         map[string]map[string]VariantClass `yaml:"variants,omitempty"`
	DefaultVariants  map[string]any                     `yaml:"default_variants,omitempty"`
	CompoundVariants []CompoundVariantRule              `yaml:"compound_variants,omitempty" validate:"omitempty,dive"`
	CompoundSlots    []CompoundSlotRule                 `yaml:"compound_slots,omitempty" validate:"omitempty,dive"`
	Config           *DocumentConfig                    `yaml:"config,omitempty"`
}

// DocumentConfig carries the recognized configuration options.
type DocumentConfig struct {
	MergeConflictingClasses *bool `yaml:"merge_conflicting_classes,omitempty"`
}

// ClassList is a class fragment authored as either a scalar string or a
// sequence of strings.
type ClassList []string

// UnmarshalYAML accepts a scalar or a sequence node.
func (c *ClassList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	}

	var scalar string
	if err := node.Decode(&scalar); err != nil {
		return err
	}
	if scalar == "" {
		*c = nil
		return nil
	}
	*c = ClassList{scalar}
	return nil
}

// VariantClass is a variant value's contribution: either a class fragment or
// a slot-name to fragment mapping for slot components.
type VariantClass struct {
	Classes ClassList
	Slots   map[string]ClassList
}

// UnmarshalYAML decodes a mapping node as per-slot classes and anything else
// as a plain fragment.
func (v *VariantClass) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		return node.Decode(&v.Slots)
	}
	return node.Decode(&v.Classes)
}

// ConditionValue is a compound rule condition: a scalar required value or a
// sequence of acceptable values.
type ConditionValue struct {
	Value any
}

// UnmarshalYAML decodes sequences into a list of acceptable values and
// anything else as a scalar.
func (c *ConditionValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []any
		if err := node.Decode(&list); err != nil {
			return err
		}
		c.Value = list
		return nil
	}

	var scalar any
	if err := node.Decode(&scalar); err != nil {
		return err
	}
	c.Value = scalar
	return nil
}

// CompoundVariantRule is a compound variant in document form: condition keys
// are written inline next to the reserved "class" key.
type CompoundVariantRule struct {
	When  map[string]ConditionValue
	Class VariantClass
}

// UnmarshalYAML splits the reserved "class" key from the inline conditions.
// The "slots" key is reserved for compound slots and ignored here.
func (r *CompoundVariantRule) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}

	r.When = make(map[string]ConditionValue, len(raw))
	for key, value := range raw {
		switch key {
		case "class":
			if err := value.Decode(&r.Class); err != nil {
				return err
			}
		case "slots":
		default:
			var condition ConditionValue
			if err := value.Decode(&condition); err != nil {
				return err
			}
			r.When[key] = condition
		}
	}
	return nil
}

// CompoundSlotRule is a compound slot in document form: the reserved "slots"
// and "class" keys plus inline conditions.
type CompoundSlotRule struct {
	Slots []string `validate:"min=1"`
	When  map[string]ConditionValue
	Class ClassList
}

// UnmarshalYAML splits the reserved keys from the inline conditions.
func (r *CompoundSlotRule) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}

	r.When = make(map[string]ConditionValue, len(raw))
	for key, value := range raw {
		switch key {
		case "slots":
			if err := value.Decode(&r.Slots); err != nil {
				return err
			}
		case "class":
			if err := value.Decode(&r.Class); err != nil {
				return err
			}
		default:
			var condition ConditionValue
			if err := value.Decode(&condition); err != nil {
				return err
			}
			r.When[key] = condition
		}
	}
	return nil
}

// DecodeBytes parses a YAML component document.
func DecodeBytes(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, classyerrors.NewParseError(extractLine(err), err)
	}
	return &doc, nil
}

// Decode parses a YAML component document from r.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, classyerrors.NewParseError(0, err)
	}
	return DecodeBytes(data)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
