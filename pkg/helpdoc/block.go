package helpdoc

// Block is one unit of a command description.
type Block interface {
	block()
}

// Paragraph is plain prose, wrapped at the base indent.
type Paragraph struct {
	Text string
}

// BulletList is the legacy list shape: a bare array of strings. Continuation
// lines hang under the first "-" of each bulleted item.
type BulletList struct {
	Items []string
}

// LabeledList is a {"type": "list"} object: a heading followed by bullets.
type LabeledList struct {
	Heading string
	Items   []string
}

// OptionRow is one flag and its one-line description.
type OptionRow struct {
	Flag        string
	Description string
}

// OptionTable is a {"type": "options"} object. Invalid holds the raw rows
// that were not [flag, description] string pairs.
type OptionTable struct {
	Rows    []OptionRow
	Invalid []any
}

// Unknown is any block shape that is not recognised. It renders nothing.
type Unknown struct {
	Value any
}

func (Paragraph) block()   {}
func (BulletList) block()  {}
func (LabeledList) block() {}
func (OptionTable) block() {}
func (Unknown) block()     {}

// Block object type tags.
const (
	TypeList    = "list"
	TypeOptions = "options"
)

// ParseBlocks classifies every raw block of a description array.
func ParseBlocks(raw []any) []Block {
	blocks := make([]Block, 0, len(raw))
	for _, r := range raw {
		blocks = append(blocks, ParseBlock(r))
	}
	return blocks
}

// ParseBlock classifies one raw description block by its shape.
func ParseBlock(raw any) Block {
	switch v := raw.(type) {
	case string:
		return Paragraph{Text: v}
	case []string:
		return BulletList{Items: v}
	case []any:
		if items, ok := stringSlice(v); ok {
			return BulletList{Items: items}
		}
	case map[string]any:
		return parseObject(v)
	}
	return Unknown{Value: raw}
}

func parseObject(obj map[string]any) Block {
	kind, _ := obj["type"].(string)
	switch kind {
	case TypeList:
		heading, ok := obj["heading"].(string)
		if !ok {
			break
		}
		items, ok := toStrings(obj["items"])
		if !ok {
			break
		}
		return LabeledList{Heading: heading, Items: items}

	case TypeOptions:
		raw, ok := obj["items"].([]any)
		if !ok {
			break
		}
		table := OptionTable{}
		for _, item := range raw {
			if row, ok := parseOptionRow(item); ok {
				table.Rows = append(table.Rows, row)
			} else {
				table.Invalid = append(table.Invalid, item)
			}
		}
		return table
	}
	return Unknown{Value: obj}
}

func parseOptionRow(item any) (OptionRow, bool) {
	pair, ok := toStrings(item)
	if !ok || len(pair) != 2 {
		return OptionRow{}, false
	}
	return OptionRow{Flag: pair[0], Description: pair[1]}, true
}

func toStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		return stringSlice(s)
	}
	return nil, false
}

func stringSlice(values []any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
