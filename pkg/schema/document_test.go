package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
	"github.com/alexisbeaulieu97/classy/pkg/variants"
)

const buttonYAML = `
base: "inline-flex items-center"
variants:
  color:
    primary: "bg-blue-500 text-white"
    secondary:
      - bg-gray-200
      - text-gray-900
  disabled:
    "true": "opacity-50"
    "false": ""
default_variants:
  color: primary
compound_variants:
  - color: [primary, secondary]
    disabled: "false"
    class: "shadow-sm"
config:
  merge_conflicting_classes: false
`

const cardYAML = `
slots:
  root: "rounded-lg border"
  title: "font-semibold"
  body: "text-sm"
variants:
  color:
    primary:
      root: "border-blue-500"
      title: "text-blue-700"
compound_slots:
  - slots: [title, body]
    color: primary
    class: "px-4"
config:
  merge_conflicting_classes: false
`

func TestDecodeBytesComponentDocument(t *testing.T) {
	t.Parallel()

	doc, err := DecodeBytes([]byte(buttonYAML))
	require.NoError(t, err)

	require.Equal(t, ClassList{"inline-flex items-center"}, doc.Base)
	require.Equal(t, ClassList{"bg-gray-200", "text-gray-900"}, doc.Variants["color"]["secondary"].Classes)
	require.Equal(t, "primary", doc.DefaultVariants["color"])

	require.Len(t, doc.CompoundVariants, 1)
	rule := doc.CompoundVariants[0]
	require.Equal(t, ClassList{"shadow-sm"}, rule.Class.Classes)
	require.Equal(t, []any{"primary", "secondary"}, rule.When["color"].Value)
	require.Equal(t, "false", rule.When["disabled"].Value)

	require.NotNil(t, doc.Config)
	require.NotNil(t, doc.Config.MergeConflictingClasses)
	require.False(t, *doc.Config.MergeConflictingClasses)
}

func TestDecodeSlotDocument(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader(cardYAML))
	require.NoError(t, err)

	require.Len(t, doc.Slots, 3)
	require.Equal(t, ClassList{"rounded-lg border"}, doc.Slots["root"])

	primary := doc.Variants["color"]["primary"]
	require.Nil(t, primary.Classes)
	require.Equal(t, ClassList{"border-blue-500"}, primary.Slots["root"])

	require.Len(t, doc.CompoundSlots, 1)
	rule := doc.CompoundSlots[0]
	require.ElementsMatch(t, []string{"title", "body"}, rule.Slots)
	require.Equal(t, "primary", rule.When["color"].Value)
	require.Equal(t, ClassList{"px-4"}, rule.Class)
}

func TestDecodeEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := DecodeBytes(nil)
	require.NoError(t, err)
	require.Equal(t, variants.Options{}, doc.Options())
}

func TestDecodeInvalidYAMLReturnsParseError(t *testing.T) {
	t.Parallel()

	_, err := DecodeBytes([]byte("base: [unclosed"))
	require.Error(t, err)

	var parseErr *classyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeReportsLineNumbers(t *testing.T) {
	t.Parallel()

	bad := "base: fine\nvariants: [not, a, mapping]\n"
	_, err := DecodeBytes([]byte(bad))
	require.Error(t, err)

	var parseErr *classyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestDocumentOptionsMatchesGoLiteral(t *testing.T) {
	t.Parallel()

	doc, err := DecodeBytes([]byte(buttonYAML))
	require.NoError(t, err)
	fromYAML := variants.Build(doc.Options())

	disabled := false
	fromGo := variants.Build(variants.Options{
		Base: "inline-flex items-center",
		Variants: map[string]map[string]any{
			"color": {
				"primary":   "bg-blue-500 text-white",
				"secondary": []string{"bg-gray-200", "text-gray-900"},
			},
			"disabled": {
				"true":  "opacity-50",
				"false": "",
			},
		},
		DefaultVariants: map[string]any{"color": "primary"},
		CompoundVariants: []variants.CompoundVariant{
			{
				When:  map[string]any{"color": []any{"primary", "secondary"}, "disabled": "false"},
				Class: "shadow-sm",
			},
		},
		Config: &variants.Config{MergeConflicting: &disabled},
	})

	props := []variants.Props{
		nil,
		{"color": "secondary"},
		{"color": "secondary", "disabled": "false"},
		{"disabled": true},
		{"color": "primary", "class": "mt-2"},
	}
	for _, p := range props {
		require.Equal(t, fromGo.Resolve(p), fromYAML.Resolve(p))
	}
}

func TestSlotDocumentResolvesThroughEngine(t *testing.T) {
	t.Parallel()

	doc, err := DecodeBytes([]byte(cardYAML))
	require.NoError(t, err)
	d := variants.Build(doc.Options())

	resolvers := d.ResolveSlots(variants.Props{"color": "primary"})
	require.Len(t, resolvers, 3)
	require.Equal(t, "rounded-lg border border-blue-500", resolvers["root"](nil))
	require.Equal(t, "font-semibold text-blue-700 px-4", resolvers["title"](nil))
	require.Equal(t, "text-sm px-4", resolvers["body"](nil))
}
