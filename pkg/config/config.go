package config

import (
	"strings"

	"github.com/arthur-debert/helpex/pkg/errors"
)

// Config is the complete helpex configuration
type Config struct {
	Render   Render   `koanf:"render"`
	Terminal Terminal `koanf:"terminal"`
	Editor   Editor   `koanf:"editor"`
	Store    Store    `koanf:"store"`
}

// Render holds the layout settings of the help renderer
type Render struct {
	Indent      int    `koanf:"indent"`
	RightMargin int    `koanf:"right_margin"`
	Bullet      string `koanf:"bullet"`
}

// Terminal holds the size assumed when it cannot be detected
type Terminal struct {
	FallbackColumns int `koanf:"fallback_columns"`
	FallbackLines   int `koanf:"fallback_lines"`
}

// Editor selects the program used by --edit
type Editor struct {
	Command string `koanf:"command"`
	Args    string `koanf:"args"`
}

// Store lists the record file extensions, in lookup order
type Store struct {
	Extensions []string `koanf:"extensions"`
}

// IndentString returns the indent as spaces
func (r Render) IndentString() string {
	return strings.Repeat(" ", r.Indent)
}

// Validate checks the values a user may have set out of range
func (c *Config) Validate() error {
	switch {
	case c.Render.Indent < 1:
		return invalid("render.indent", c.Render.Indent)
	case c.Render.RightMargin < 0:
		return invalid("render.right_margin", c.Render.RightMargin)
	case c.Terminal.FallbackColumns <= 0:
		return invalid("terminal.fallback_columns", c.Terminal.FallbackColumns)
	case c.Terminal.FallbackLines <= 0:
		return invalid("terminal.fallback_lines", c.Terminal.FallbackLines)
	case len(c.Store.Extensions) == 0:
		return invalid("store.extensions", c.Store.Extensions)
	}

	for _, ext := range c.Store.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return invalid("store.extensions", ext)
		}
	}
	return nil
}

func invalid(key string, value interface{}) error {
	return errors.Newf(errors.ErrConfigParse, "invalid value for %s: %v", key, value).
		WithDetail("key", key)
}
