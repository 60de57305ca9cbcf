package domain

import types "levelkeeper/internal/domain/types"

// ProgressionReader exposes read-only access to member progression.
type ProgressionReader interface {
	GetLevel(id string) int
	GetExperience(id string) int
	GetCurrency(id string) int
	Lookup(id string) (types.Member, bool)
	Snapshot() types.Table
}

// ProgressionService tracks level, experience and currency per member.
//
// Every mutator except AddExperience returns types.ErrNotFound for an unknown
// member. A *types.PersistenceError means the change was applied in memory
// but not written.
type ProgressionService interface {
	ProgressionReader

	AddExperience(id string, amount int) error
	ReduceExperience(id string, amount int) error
	SetExperience(id string, value int) error

	AddLevel(id string, delta int) error
	ReduceLevel(id string, delta int) error
	SetLevel(id string, value int) error

	AddCurrency(id string, amount int) error
	SpendCurrency(id string, amount int) (bool, error)
	SetCurrency(id string, amount int) error

	Replace(t types.Table) error
	Flush() error
	Dirty() bool
}
