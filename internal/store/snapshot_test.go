package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"levelkeeper/internal/domain"
)

// Cheap scrypt parameters keep the tests fast.
const testN, testR, testP = 1 << 4, 8, 1

func TestSnapshot_SealOpen_OK(t *testing.T) {
	want := domain.Table{
		"u1": {Level: 3, Experience: 40, Currency: 9},
		"u2": {Level: 1},
	}
	b, err := sealSnapshot("correct horse", want, testN, testR, testP)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	got, err := OpenSnapshot("correct horse", b)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_WrongPassphrase_Fails(t *testing.T) {
	b, err := sealSnapshot("correct", domain.Table{"u1": {Level: 1}}, testN, testR, testP)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := OpenSnapshot("wrong", b); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestSnapshot_EmptyPassphrase_Rejected(t *testing.T) {
	if _, err := SealSnapshot("", domain.Table{}); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("seal: want ErrEmptyPassphrase, got %v", err)
	}
	if _, err := OpenSnapshot("", []byte("{}")); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("open: want ErrEmptyPassphrase, got %v", err)
	}
}

func TestSnapshot_FutureVersion_Rejected(t *testing.T) {
	if _, err := OpenSnapshot("pass", []byte(`{"v":99}`)); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestSnapshot_WriteRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "members.sealed")
	want := domain.Table{"u9": {Level: 7, Experience: 1, Currency: 2}}

	b, err := sealSnapshot("pass", want, testN, testR, testP)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if err := writeFile(path, b, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadSnapshot(path, "pass")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
