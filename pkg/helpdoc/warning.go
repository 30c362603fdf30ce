package helpdoc

import "fmt"

// WarningKind identifies a non-fatal rendering problem.
type WarningKind string

const (
	// WarnUnknownBlock marks a description block with an unrecognised shape.
	WarnUnknownBlock WarningKind = "unknown block"
	// WarnMalformedOptionRow marks an option row that is not a [flag, description] pair.
	WarnMalformedOptionRow WarningKind = "malformed option row"
	// WarnDegenerateWidth marks a width too small for the configured indents.
	WarnDegenerateWidth WarningKind = "degenerate width"
)

// Warning is a diagnostic collected while rendering. Value holds the raw
// offending input.
type Warning struct {
	Kind  WarningKind
	Value any
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %#v", w.Kind, w.Value)
}
