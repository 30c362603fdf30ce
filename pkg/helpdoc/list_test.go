package helpdoc

import (
	"strings"
	"testing"

	"github.com/arthur-debert/helpex/pkg/textwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHangWidth(t *testing.T) {
	tests := []struct {
		name     string
		bulleted string
		want     int
	}{
		{"dash separator", "• file - the path", 9},
		{"no dash falls back to bullet", "• plain prose", 2},
		{"dash inside a flag wins", "• -v - verbose", 4},
		{"wide runes before the dash", "• 日本 - japanese", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HangWidth(tt.bulleted))
		})
	}
}

func TestBulletList_HangsUnderDash(t *testing.T) {
	r := newRenderer(Options{Width: 30})

	out := r.bulletList(BulletList{Items: []string{
		"file - the path of the file to be processed by the tool",
	}})

	hang := strings.Repeat(" ", 4+9)
	expected := strings.Join([]string{
		"    • file - the path of the",
		hang + "file to be",
		hang + "processed by the",
		hang + "tool",
	}, "\n")
	assert.Equal(t, expected, out)

	// Continuation text starts in the column right after "- ".
	first := strings.Split(out, "\n")[0]
	assert.Equal(t, len(hang), textwrap.StringWidth(first[:strings.Index(first, "the")]))
}

func TestBulletList_NoDash(t *testing.T) {
	r := newRenderer(Options{Width: 20})

	out := r.bulletList(BulletList{Items: []string{"alpha beta gamma delta", "x"}})

	assert.Equal(t, "    • alpha beta\n      gamma delta\n    • x", out)
}

func TestBulletList_PerItemIndent(t *testing.T) {
	r := newRenderer(Options{Width: 26})

	out := r.bulletList(BulletList{Items: []string{
		"ab - one two three four",
		"abcdef - one two three four",
	}})

	expected := strings.Join([]string{
		"    • ab - one two three",
		strings.Repeat(" ", 4+7) + "four",
		"    • abcdef - one two",
		strings.Repeat(" ", 4+11) + "three four",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestLabeledList(t *testing.T) {
	r := newRenderer(Options{Width: 30})

	out := r.labeledList(LabeledList{
		Heading: "Examples:",
		Items: []string{
			"run the thing with a very long description that wraps",
			"short",
		},
	})

	expected := strings.Join([]string{
		"    Examples:",
		"    • run the thing with a",
		"      very long description",
		"      that wraps",
		"    • short",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestLabeledList_NoItems(t *testing.T) {
	r := newRenderer(Options{})

	assert.Equal(t, "    Heading", r.labeledList(LabeledList{Heading: "Heading"}))
}

func TestBulletList_HangBeyondWidthIsClamped(t *testing.T) {
	r := newRenderer(Options{Width: 40})
	item := "abcdefghij abcdefghij abcdefghij - tail words"

	out := r.bulletList(BulletList{Items: []string{item}})

	hang := strings.Repeat(" ", 40-2)
	expected := strings.Join([]string{
		"    • abcdefghij abcdefghij abcdefghij -",
		hang + "tail",
		hang + "words",
	}, "\n")
	assert.Equal(t, expected, out)

	require.Len(t, r.warnings, 1)
	assert.Equal(t, WarnDegenerateWidth, r.warnings[0].Kind)
	assert.Equal(t, item, r.warnings[0].Value)
}

func TestBulletList_LongItemAtDefaultWidth(t *testing.T) {
	r := newRenderer(Options{})
	item := "Reads the configuration from every location it knows about, including the well-known defaults and the overrides"

	out := r.bulletList(BulletList{Items: []string{item}})

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "    • Reads the configuration"))
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, DefaultIndent), "line %q lost its indent", line)
	}
	require.Len(t, r.warnings, 1)
	assert.Equal(t, WarnDegenerateWidth, r.warnings[0].Kind)
}

func TestLabeledList_HangBeyondWidthIsClamped(t *testing.T) {
	r := newRenderer(Options{Width: 7})

	out := r.labeledList(LabeledList{Heading: "H", Items: []string{"a b"}})

	assert.Equal(t, "    H\n    • a\n     b", out)
	require.Len(t, r.warnings, 1)
	assert.Equal(t, "a b", r.warnings[0].Value)
}

func TestBulletList_FittingHangHasNoWarning(t *testing.T) {
	r := newRenderer(Options{Width: 30})

	r.bulletList(BulletList{Items: []string{"file - the path of the file"}})

	assert.Empty(t, r.warnings)
}
