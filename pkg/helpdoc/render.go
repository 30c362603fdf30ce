package helpdoc

import (
	"strings"

	"github.com/arthur-debert/helpex/pkg/textwrap"
)

// Rendering defaults. DefaultWidth is the 87 column fallback terminal minus
// the 10 column right margin.
const (
	DefaultWidth  = 77
	DefaultIndent = "    "
	DefaultBullet = "•"
)

// Options controls layout. Zero values fall back to the defaults above.
type Options struct {
	Width  int
	Indent string
	Bullet string
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.Bullet == "" {
		o.Bullet = DefaultBullet
	}
	return o
}

// renderer carries the options of one document and collects its warnings.
type renderer struct {
	opts     Options
	warnings []Warning
}

func newRenderer(opts Options) *renderer {
	return &renderer{opts: opts.withDefaults()}
}

func (r *renderer) warn(kind WarningKind, value any) {
	r.warnings = append(r.warnings, Warning{Kind: kind, Value: value})
}

// wrapper returns the paragraph layout: base indent on every line.
func (r *renderer) wrapper() textwrap.Wrapper {
	return textwrap.New(r.opts.Width, r.opts.Indent, r.opts.Indent)
}

func (r *renderer) paragraph(text string) string {
	return r.wrapper().Fill(text)
}

// description joins the rendered blocks with one blank line. Unknown blocks
// are reported and leave no trace in the output.
func (r *renderer) description(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b := b.(type) {
		case Paragraph:
			parts = append(parts, r.paragraph(b.Text))
		case BulletList:
			parts = append(parts, r.bulletList(b))
		case LabeledList:
			parts = append(parts, r.labeledList(b))
		case OptionTable:
			parts = append(parts, r.optionTable(b))
		case Unknown:
			r.warn(WarnUnknownBlock, b.Value)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r *renderer) exitStatus(text string) string {
	return "\n\n" + r.opts.Indent + "Exit Status:\n" + r.paragraph(text)
}
