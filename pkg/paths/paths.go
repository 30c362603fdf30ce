package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/helpex/pkg/errors"
)

// Environment variable names
const (
	// EnvHelpexDataDir overrides the directory holding the help records
	EnvHelpexDataDir = "HELPEX_DATA_DIR"

	// EnvHelpexConfigDir overrides the XDG config directory for helpex
	EnvHelpexConfigDir = "HELPEX_CONFIG_DIR"

	// EnvHelpexStateDir overrides the XDG state directory for helpex
	EnvHelpexStateDir = "HELPEX_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "helpex"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "helpex.log"
)

// Paths resolves the directories helpex reads and writes.
type Paths struct {
	dataDir   string
	configDir string
	stateDir  string
}

// New resolves all directories from the environment.
func New() *Paths {
	// adrg/xdg caches the environment at init; pick up changes made since.
	xdg.Reload()

	return &Paths{
		dataDir:   dirFromEnv(EnvHelpexDataDir, xdg.DataHome),
		configDir: dirFromEnv(EnvHelpexConfigDir, xdg.ConfigHome),
		stateDir:  dirFromEnv(EnvHelpexStateDir, xdg.StateHome),
	}
}

func dirFromEnv(envVar, base string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// DataDir returns the directory holding the help records
func (p *Paths) DataDir() string {
	return p.dataDir
}

// ConfigDir returns the helpex configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the path of the user configuration file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the helpex state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// EnsureDataDir creates the data directory when it does not exist yet and
// reports whether it had to.
func (p *Paths) EnsureDataDir() (bool, error) {
	info, err := os.Stat(p.dataDir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Newf(errors.ErrDirCreate, "data path %s is not a directory", p.dataDir).
				WithDetail("path", p.dataDir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat data directory %s", p.dataDir).
			WithDetail("path", p.dataDir)
	}

	if err := os.MkdirAll(p.dataDir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create data directory %s", p.dataDir).
			WithDetail("path", p.dataDir)
	}
	return true, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
