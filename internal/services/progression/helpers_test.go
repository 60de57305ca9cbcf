package progression_test

import (
	"errors"
	"strings"
	"testing"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/services/progression"
)

var errDiskFull = errors.New("disk full")

// memoryDocument is an in-memory domain.MemberDocument that counts writes
// and can be told to fail them.
type memoryDocument struct {
	saved   domain.Table
	saves   int
	failing bool
	loadErr error
}

func (d *memoryDocument) Load() (domain.Table, error) {
	if d.loadErr != nil {
		return nil, d.loadErr
	}
	return d.saved.Clone(), nil
}

func (d *memoryDocument) Save(t domain.Table) error {
	if d.failing {
		return errDiskFull
	}
	d.saves++
	d.saved = t.Clone()
	return nil
}

func newService(t *testing.T, seed domain.Table) (*progression.Service, *memoryDocument) {
	t.Helper()
	doc := &memoryDocument{saved: seed}
	svc, err := progression.New(doc)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, doc
}

func mustMember(t *testing.T, svc *progression.Service, id string) domain.Member {
	t.Helper()
	m, ok := svc.Lookup(id)
	if !ok {
		t.Fatalf("member %q missing", id)
	}
	return m
}

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }
