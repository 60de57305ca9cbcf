package domain

import types "levelkeeper/internal/domain/types"

// MemberDocument persists the whole member table as one document.
type MemberDocument interface {
	// Load returns the last durable table. A missing document is an empty table.
	Load() (types.Table, error)
	// Save replaces the durable table with t.
	Save(t types.Table) error
}
