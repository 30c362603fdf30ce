package helpdoc

import (
	"github.com/arthur-debert/helpex/pkg/errors"
)

// Record keys.
const (
	KeyName        = "name"
	KeySignature   = "signature"
	KeyDescription = "description"
	KeyExitStatus  = "exit status"
)

// Record is a decoded help file.
type Record map[string]any

// Document is a validated, fully rendered help record.
type Document struct {
	name        string
	signature   string
	description string
	exitStatus  string
	rendered    string
	warnings    []Warning
}

// New validates record and renders it with opts.
func New(record Record, opts Options) (*Document, error) {
	signature, err := requireString(record, KeySignature)
	if err != nil {
		return nil, err
	}

	name, err := requireString(record, KeyName)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New(errors.ErrInvalidField, "name must not be empty").
			WithDetail("field", KeyName)
	}

	rawDescription, ok := record[KeyDescription]
	if !ok || rawDescription == nil {
		return nil, missingField(KeyDescription)
	}

	exitStatus := ""
	if raw, ok := record[KeyExitStatus]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, invalidField(KeyExitStatus, raw)
		}
		exitStatus = s
	}

	r := newRenderer(opts)
	if r.wrapper().Degenerate() {
		r.warn(WarnDegenerateWidth, r.opts.Width)
	}

	d := &Document{
		name:       name,
		signature:  signature,
		exitStatus: exitStatus,
	}

	switch v := rawDescription.(type) {
	case string:
		d.description = v
	case []any:
		d.description = r.description(ParseBlocks(v))
	case []string:
		blocks := make([]Block, 0, len(v))
		for _, s := range v {
			blocks = append(blocks, Paragraph{Text: s})
		}
		d.description = r.description(blocks)
	default:
		return nil, invalidField(KeyDescription, rawDescription)
	}

	d.rendered = d.name + ": " + d.signature + "\n" + d.description
	if d.exitStatus != "" {
		d.rendered += r.exitStatus(d.exitStatus)
	}
	d.warnings = r.warnings

	return d, nil
}

// Render is a shorthand for New with only a width. Unlike Options.Width, a
// width below 1 is not replaced by DefaultWidth: it is rendered as width 1,
// which takes the degenerate layout.
func Render(record Record, width int) (string, []Warning, error) {
	if width < 1 {
		width = 1
	}
	d, err := New(record, Options{Width: width})
	if err != nil {
		return "", nil, err
	}
	return d.String(), d.Warnings(), nil
}

// Name returns the command name.
func (d *Document) Name() string { return d.name }

// Signature returns the one-line usage summary.
func (d *Document) Signature() string { return d.signature }

// Description returns the rendered description without the header line.
func (d *Document) Description() string { return d.description }

// ExitStatus returns the raw exit status text, empty when absent.
func (d *Document) ExitStatus() string { return d.exitStatus }

// Warnings returns the diagnostics collected while rendering.
func (d *Document) Warnings() []Warning {
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// String returns the printable help text.
func (d *Document) String() string {
	return d.rendered
}

func requireString(record Record, key string) (string, error) {
	raw, ok := record[key]
	if !ok || raw == nil {
		return "", missingField(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidField(key, raw)
	}
	return s, nil
}

func missingField(key string) error {
	return errors.Newf(errors.ErrMissingField, "missing key %q", key).
		WithDetail("field", key)
}

func invalidField(key string, value any) error {
	return errors.Newf(errors.ErrInvalidField, "key %q has unexpected type %T", key, value).
		WithDetail("field", key)
}
