package settings

import (
	"encoding/json"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
)

// document is the on-disk shape of the settings repository.
type document struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store is a versioned key/value repository backed by a JSON file. Open
// migrates older documents to the current schema before use; Save writes
// the document back in the current schema only.
type Store struct {
	path string
	doc  document
}

// Open loads the repository at path, creating an empty current-version
// document if the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		doc:  document{Version: CurrentVersion, Values: map[string]string{}},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Detail("read %s", path).
			Cause(err).
			Build()
	}

	if err := json.Unmarshal(raw, &s.doc); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("parse %s", path).
			Cause(err).
			Build()
	}
	if s.doc.Values == nil {
		s.doc.Values = map[string]string{}
	}

	if err := migrate(&s.doc); err != nil {
		return nil, err
	}
	Logger().Debug("opened settings repository",
		zap.String("path", path),
		zap.Int("keys", len(s.doc.Values)))
	return s, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.doc.Values[key]
	return v, ok
}

// Set stores value under key.
func (s *Store) Set(key, value string) {
	s.doc.Values[key] = value
}

// Unset removes key, reporting whether it existed.
func (s *Store) Unset(key string) bool {
	_, ok := s.doc.Values[key]
	delete(s.doc.Values, key)
	return ok
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.doc.Values))
	for k := range s.doc.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the repository back to its file.
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s.doc, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(raw, '\n'), 0o644)
}
