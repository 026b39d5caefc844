package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

// Lint checks a decoded document for authoring mistakes: malformed slot and
// variant names, compound slots without slots, and rules referencing
// undeclared variants or slots. Lint is advisory tooling — Options works on
// documents that fail it, since resolution treats unknown references as
// no-ops.
func Lint(doc *Document) error {
	if doc == nil {
		return classyerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for name := range doc.Slots {
		if err := checkName(v, "slots", name, "identifier"); err != nil {
			return err
		}
	}

	for name, values := range doc.Variants {
		if err := checkName(v, "variants", name, "identifier"); err != nil {
			return err
		}
		for value := range values {
			if err := checkName(v, fmt.Sprintf("variants.%s", name), value, "variant_value"); err != nil {
				return err
			}
		}
	}

	for name := range doc.DefaultVariants {
		if _, declared := doc.Variants[name]; !declared {
			return classyerrors.NewValidationError("default_variants", fmt.Sprintf("references undeclared variant %q", name), nil)
		}
	}

	for i, rule := range doc.CompoundVariants {
		if len(rule.Class.Classes) == 0 && len(rule.Class.Slots) == 0 {
			return classyerrors.NewValidationError(fieldForRule("compound_variants", i, "class"), "rule has no class", nil)
		}
		if err := checkConditions(doc, fmt.Sprintf("compound_variants[%d]", i), rule.When); err != nil {
			return err
		}
	}

	for i, rule := range doc.CompoundSlots {
		if len(rule.Class) == 0 {
			return classyerrors.NewValidationError(fieldForRule("compound_slots", i, "class"), "rule has no class", nil)
		}
		for _, slot := range rule.Slots {
			if _, declared := doc.Slots[slot]; !declared {
				return classyerrors.NewValidationError(fieldForRule("compound_slots", i, "slots"), fmt.Sprintf("references undeclared slot %q", slot), nil)
			}
		}
		if err := checkConditions(doc, fmt.Sprintf("compound_slots[%d]", i), rule.When); err != nil {
			return err
		}
	}

	return nil
}

func checkConditions(doc *Document, field string, conditions map[string]ConditionValue) error {
	for name := range conditions {
		if _, declared := doc.Variants[name]; !declared {
			return classyerrors.NewValidationError(field, fmt.Sprintf("condition references undeclared variant %q", name), nil)
		}
	}
	return nil
}

func checkName(v *validator.Validate, field, name, tag string) error {
	if err := v.Var(name, tag); err != nil {
		return classyerrors.NewValidationError(field, fmt.Sprintf("invalid name %q", name), err)
	}
	return nil
}

func fieldForRule(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.StructNamespace(), ve.Tag())
		return classyerrors.NewValidationError(ve.StructNamespace(), msg, err)
	}

	return classyerrors.NewValidationError("document", err.Error(), err)
}
