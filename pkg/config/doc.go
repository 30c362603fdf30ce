// Package config loads helpex settings.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. the user file, $XDG_CONFIG_HOME/helpex/config.toml, when it exists
//  3. HELPEX_* environment variables: HELPEX_RENDER_RIGHT_MARGIN=4 sets
//     render.right_margin (only the first underscore separates the section)
//
// The merged tree is decoded into Config with mapstructure, weakly typed so
// that environment strings become ints and comma separated lists.
package config
