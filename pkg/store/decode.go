package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/helpdoc"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses data according to the extension of path. The document must
// be an object at the top level.
func Decode(path string, data []byte) (helpdoc.Record, error) {
	var (
		record helpdoc.Record
		err    error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &record)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &record)
	case ".toml":
		err = toml.Unmarshal(data, &record)
	default:
		err = fmt.Errorf("unsupported record format %q", ext)
	}

	if err == nil && record == nil {
		err = fmt.Errorf("record is empty or not an object")
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordDecode, "cannot decode %s", path).
			WithDetail("path", path)
	}
	return record, nil
}
