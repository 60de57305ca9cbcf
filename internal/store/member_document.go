package store

import (
	"sync"

	"levelkeeper/internal/domain"
)

// DefaultDataFile is used when no document path is configured.
const DefaultDataFile = "./data/memberData.json"

// JSONFile persists the member table as a single JSON object on disk.
//
// Every Save rewrites the whole document.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile returns a JSONFile backed by path, or DefaultDataFile if empty.
func NewJSONFile(path string) *JSONFile {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONFile{path: path}
}

// Path returns the document location.
func (s *JSONFile) Path() string { return s.path }

// Load reads the document. A missing file yields an empty table.
func (s *JSONFile) Load() (domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Table{}
	if _, err := readJSON(s.path, &t); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	if t == nil { // document holding a bare null
		t = domain.Table{}
	}
	return t, nil
}

// Save overwrites the document with t.
func (s *JSONFile) Save(t domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t == nil {
		t = domain.Table{}
	}
	if err := writeJSON(s.path, t, 0o600); err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Compile-time assertion that JSONFile implements domain.MemberDocument.
var _ domain.MemberDocument = (*JSONFile)(nil)
