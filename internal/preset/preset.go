// Package preset persists named formatting option sets in a YAML file so
// frequently used combinations can be recalled by name.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/listforge/delimit"
)

// ErrNotFound is returned when a named preset does not exist.
var ErrNotFound = errors.New("preset not found")

// Record is the on-disk shape of a preset. Wrap, Delimiter, and Case hold
// user-facing aliases and are resolved on use, so a hand-edited file gets
// the same validation as a flag. Absent Dedupe/Trim default to enabled.
type Record struct {
	Wrap            string `yaml:"wrap,omitempty"`
	Delimiter       string `yaml:"delimiter,omitempty"`
	CustomDelimiter string `yaml:"custom_delimiter,omitempty"`
	Case            string `yaml:"case,omitempty"`
	Dedupe          *bool  `yaml:"dedupe,omitempty"`
	Trim            *bool  `yaml:"trim,omitempty"`
}

// Options resolves the record into pipeline options.
func (r Record) Options() (delimit.Options, error) {
	opts := delimit.DefaultOptions()

	var err error
	if r.Wrap != "" {
		if opts.Wrapper, err = delimit.ParseWrapper(r.Wrap); err != nil {
			return delimit.Options{}, err
		}
	}
	if r.Delimiter != "" {
		if opts.Delimiter, err = delimit.ParseDelimiter(r.Delimiter); err != nil {
			return delimit.Options{}, err
		}
	}
	if r.Case != "" {
		if opts.Case, err = delimit.ParseCaseMode(r.Case); err != nil {
			return delimit.Options{}, err
		}
	}
	opts.CustomDelimiter = r.CustomDelimiter
	if r.Dedupe != nil {
		opts.Dedupe = *r.Dedupe
	}
	if r.Trim != nil {
		opts.Trim = *r.Trim
	}
	return opts, nil
}

// Store reads and writes presets at a fixed path. A missing file reads as
// an empty preset set.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all presets from disk.
func (s *Store) Load() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	records := map[string]Record{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return records, nil
}

// Save writes or replaces a named preset.
func (s *Store) Save(name string, rec Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records[name] = rec
	return s.write(records)
}

// Delete removes a named preset. Deleting an unknown name is an error.
func (s *Store) Delete(name string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := records[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(records, name)
	return s.write(records)
}

// Resolve loads a named preset and resolves it into pipeline options.
func (s *Store) Resolve(name string) (delimit.Options, error) {
	records, err := s.Load()
	if err != nil {
		return delimit.Options{}, err
	}
	rec, ok := records[name]
	if !ok {
		return delimit.Options{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rec.Options()
}

// Names returns all preset names in sorted order.
func (s *Store) Names() ([]string, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) write(records map[string]Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}
