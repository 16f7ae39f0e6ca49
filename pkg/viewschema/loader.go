package viewschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Views map[string]Definition `json:"views" yaml:"views"`
}

// Store holds the view definitions loaded from a schema bundle.
type Store struct {
	views map[string]Definition
}

// Get retrieves a definition by name.
func (s *Store) Get(name string) (Definition, bool) {
	def, ok := s.views[name]
	return def, ok
}

// Names returns the defined view names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of definitions in the store.
func (s *Store) Len() int {
	return len(s.views)
}

// LoadFS walks the filesystem and parses every JSON/YAML view schema file.
// A nil fsys or a bundle without schema files yields an empty store; the
// same view name defined twice is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{views: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("viewschema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, def := range doc.Views {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("viewschema: file %s defines an unnamed view", path)
			}
			if _, exists := store.views[trimmed]; exists {
				return fmt.Errorf("viewschema: duplicate view %q (file %s)", trimmed, path)
			}
			if err := validate(def, trimmed, path); err != nil {
				return err
			}
			store.views[trimmed] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("viewschema: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("viewschema: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func validate(def Definition, name, path string) error {
	if strings.TrimSpace(def.Kind) == "" {
		return fmt.Errorf("viewschema: view %q has no kind (file %s)", name, path)
	}
	if len(def.Columns) == 0 {
		return fmt.Errorf("viewschema: view %q declares no columns (file %s)", name, path)
	}
	for i, col := range def.Columns {
		if strings.TrimSpace(col.Key) == "" {
			return fmt.Errorf("viewschema: view %q column %d has no key (file %s)", name, i, path)
		}
	}
	for i, action := range def.Actions {
		if strings.TrimSpace(action.Name) == "" {
			return fmt.Errorf("viewschema: view %q action %d has no name (file %s)", name, i, path)
		}
	}
	return nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
