// Package store finds and decodes help records in the data directory.
//
// A record is a file named after the command it documents, e.g. tar.json.
// JSON is the canonical format; YAML and TOML files holding the same keys are
// read as well. When several files share a name the first extension in the
// configured order wins.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/helpdoc"
)

// DefaultExtensions is the lookup order used when none is configured.
var DefaultExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// Store is a directory of help records.
type Store struct {
	dir        string
	extensions []string
}

// New returns a Store reading dir. An empty extensions list means DefaultExtensions.
func New(dir string, extensions []string) *Store {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Store{
		dir:        dir,
		extensions: extensions,
	}
}

// Dir returns the directory holding the records.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the sorted names of all records. A missing directory holds no
// records.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", s.dir).
			WithDetail("path", s.dir)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if !s.supported(ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Path returns the file holding the record for name. When no such file
// exists yet it returns where a new record would be created, using the first
// extension.
func (s *Store) Path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if path, ok := s.lookup(name); ok {
		return path, nil
	}
	return filepath.Join(s.dir, name+s.extensions[0]), nil
}

// Find returns the file holding the record for name.
func (s *Store) Find(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path, ok := s.lookup(name)
	if !ok {
		return "", errors.Newf(errors.ErrCommandNotFound, "unknown command %q", name).
			WithDetail("command", name)
	}
	return path, nil
}

// Load finds and decodes the record for name. It returns the record and the
// file it was read from.
func (s *Store) Load(name string) (helpdoc.Record, string, error) {
	path, err := s.Find(name)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}

	record, err := Decode(path, data)
	if err != nil {
		return nil, path, err
	}
	return record, path, nil
}

func (s *Store) lookup(name string) (string, bool) {
	for _, ext := range s.extensions {
		path := filepath.Join(s.dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (s *Store) supported(ext string) bool {
	for _, valid := range s.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "invalid command name %q", name).
			WithDetail("command", name)
	}
	return nil
}
