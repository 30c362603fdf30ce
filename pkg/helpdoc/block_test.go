package helpdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Block
	}{
		{
			name: "string is a paragraph",
			raw:  "Some prose.",
			want: Paragraph{Text: "Some prose."},
		},
		{
			name: "array of strings is a legacy bullet list",
			raw:  []any{"a - first", "b - second"},
			want: BulletList{Items: []string{"a - first", "b - second"}},
		},
		{
			name: "typed string slice is a legacy bullet list",
			raw:  []string{"only"},
			want: BulletList{Items: []string{"only"}},
		},
		{
			name: "empty array is an empty bullet list",
			raw:  []any{},
			want: BulletList{Items: []string{}},
		},
		{
			name: "array with a non-string is unknown",
			raw:  []any{"a", 1.0},
			want: Unknown{Value: []any{"a", 1.0}},
		},
		{
			name: "list object",
			raw: map[string]any{
				"type":    "list",
				"heading": "Examples:",
				"items":   []any{"one", "two"},
			},
			want: LabeledList{Heading: "Examples:", Items: []string{"one", "two"}},
		},
		{
			name: "list object without heading is unknown",
			raw:  map[string]any{"type": "list", "items": []any{"one"}},
			want: Unknown{Value: map[string]any{"type": "list", "items": []any{"one"}}},
		},
		{
			name: "options object splits valid and invalid rows",
			raw: map[string]any{
				"type": "options",
				"items": []any{
					[]any{"-x", "enable x"},
					[]any{"-y"},
					"-z",
					[]any{"-w", 3.0},
				},
			},
			want: OptionTable{
				Rows:    []OptionRow{{Flag: "-x", Description: "enable x"}},
				Invalid: []any{[]any{"-y"}, "-z", []any{"-w", 3.0}},
			},
		},
		{
			name: "options object without items is unknown",
			raw:  map[string]any{"type": "options"},
			want: Unknown{Value: map[string]any{"type": "options"}},
		},
		{
			name: "unknown object type",
			raw:  map[string]any{"type": "table"},
			want: Unknown{Value: map[string]any{"type": "table"}},
		},
		{
			name: "number",
			raw:  42.0,
			want: Unknown{Value: 42.0},
		},
		{
			name: "null",
			raw:  nil,
			want: Unknown{Value: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBlock(tt.raw))
		})
	}
}

func TestParseBlocks_PreservesOrder(t *testing.T) {
	blocks := ParseBlocks([]any{"one", []any{"two"}, true, "three"})

	assert.Equal(t, []Block{
		Paragraph{Text: "one"},
		BulletList{Items: []string{"two"}},
		Unknown{Value: true},
		Paragraph{Text: "three"},
	}, blocks)
}
