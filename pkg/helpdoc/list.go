package helpdoc

import (
	"strings"

	"github.com/arthur-debert/helpex/pkg/textwrap"
)

// bulletHang is the continuation offset that lines text up after "• ".
const bulletHang = 2

func (r *renderer) bullet(item string) string {
	return r.opts.Bullet + " " + item
}

// labeledList renders the heading on its own line and every item as a
// bullet whose continuation lines sit under the item text.
func (r *renderer) labeledList(l LabeledList) string {
	lines := []string{r.opts.Indent + l.Heading}
	for _, item := range l.Items {
		w := r.hangingWrapper(bulletHang, item)
		lines = append(lines, w.Fill(r.bullet(item)))
	}
	return strings.Join(lines, "\n")
}

// bulletList renders the legacy list shape. Each item gets its own hanging
// indent, see HangWidth.
func (r *renderer) bulletList(l BulletList) string {
	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		text := r.bullet(item)
		w := r.hangingWrapper(HangWidth(text), item)
		lines = append(lines, w.Fill(text))
	}
	return strings.Join(lines, "\n")
}

// hangingWrapper returns the base wrapper with continuation lines hang
// columns past the indent. When the base layout fits but the hang would
// leave no room, the hang is cut to the widest that still fits and a
// degenerate width warning is recorded for value.
func (r *renderer) hangingWrapper(hang int, value any) textwrap.Wrapper {
	base := r.wrapper()
	if !base.Degenerate() {
		if room := r.opts.Width - 2 - textwrap.StringWidth(r.opts.Indent); hang > room {
			r.warn(WarnDegenerateWidth, value)
			hang = room
		}
	}
	return base.WithSubsequentIndent(r.opts.Indent + strings.Repeat(" ", hang))
}

// HangWidth returns the continuation offset of a bulleted legacy item: the
// column of its first "-" plus two, so that "flag - description" entries
// continue under the description. Without a dash the text hangs under the
// bullet text.
//
// Any dash counts, including one inside a flag name or in prose.
func HangWidth(bulleted string) int {
	i := strings.IndexByte(bulleted, '-')
	if i < 0 {
		return bulletHang
	}
	return textwrap.StringWidth(bulleted[:i]) + 2
}
