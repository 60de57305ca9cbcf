package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/store"
)

func TestJSONFile_LoadMissing_Empty(t *testing.T) {
	doc := store.NewJSONFile(filepath.Join(t.TempDir(), "nope", "memberData.json"))

	got, err := doc.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty table, got %#v", got)
	}
}

func TestJSONFile_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "memberData.json")
	var doc domain.MemberDocument = store.NewJSONFile(path)

	want := domain.Table{
		"u1": {Level: 2, Experience: 0, Currency: 30},
		"u2": {Level: 50, Experience: 12, Currency: 0},
		"u3": {Level: 1, Experience: -4, Currency: 7},
	}
	if err := doc.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.NewJSONFile(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFile_Save_TwoSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memberData.json")
	doc := store.NewJSONFile(path)

	if err := doc.Save(domain.Table{"u1": {Level: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n  \"u1\": {\n    \"level\": 1,\n    \"experience\": 0,\n    \"currency\": 0\n  }\n}"
	if string(b) != want {
		t.Fatalf("unexpected document:\n%s", b)
	}
}

func TestJSONFile_Save_NoTempLeftBehind(t *testing.T) {
	dir := t.TempDir()
	doc := store.NewJSONFile(filepath.Join(dir, "memberData.json"))

	for i := 0; i < 3; i++ {
		if err := doc.Save(domain.Table{"u1": {Level: i + 1}}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "memberData.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("want only memberData.json, got %s", strings.Join(names, ", "))
	}
}

func TestJSONFile_LoadCorrupt_PersistenceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memberData.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := store.NewJSONFile(path).Load()
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("want PersistenceError, got %v", err)
	}
	if perr.Op != "load" || perr.Path != path {
		t.Fatalf("unexpected error fields: %+v", perr)
	}
}

func TestJSONFile_SaveIntoFile_PersistenceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := store.NewJSONFile(filepath.Join(blocker, "memberData.json")).Save(domain.Table{})
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) || perr.Op != "save" {
		t.Fatalf("want save PersistenceError, got %v", err)
	}
}

func TestNewJSONFile_DefaultPath(t *testing.T) {
	if got := store.NewJSONFile("").Path(); got != store.DefaultDataFile {
		t.Fatalf("want %s, got %s", store.DefaultDataFile, got)
	}
}
