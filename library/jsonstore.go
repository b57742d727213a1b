package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// DefaultDataFile is where the JSON store keeps the catalog unless
// configured otherwise.
const DefaultDataFile = "library_data.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONStore keeps the whole catalog in a single JSON array document.
// Every save rewrites the document in full.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path
// (DefaultDataFile when blank). The file is created on first save.
func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONStore{path: path}
}

// Save writes all records to a uniquely named temp file and renames it over
// the target, so a crash mid-write cannot truncate the previous snapshot.
func (s *JSONStore) Save(books []*Book) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(s.path),
		fmt.Sprintf("%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file means a fresh catalog;
// anything unparseable or inconsistent surfaces as ErrCorruptData.
func (s *JSONStore) Load() ([]*Book, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.Debug("no catalog snapshot yet, starting empty", "path", s.path)
		return []*Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var books []*Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse %s: %v: %w", s.path, err, ErrCorruptData)
	}
	for _, b := range books {
		if b == nil {
			return nil, fmt.Errorf("parse %s: null record: %w", s.path, ErrCorruptData)
		}
		if b.Genre == "" {
			b.Genre = DefaultGenre
		}
		if err := b.validate(); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.path, err)
		}
	}
	return books, nil
}
