package domain

import (
	interfaces "levelkeeper/internal/domain/interfaces"
	types "levelkeeper/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Member           = types.Member
	Table            = types.Table
	PersistenceError = types.PersistenceError
)

// Sentinel errors re-exported from the types subpackage.
var (
	ErrNotFound      = types.ErrNotFound
	ErrInvalidAmount = types.ErrInvalidAmount
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	MemberDocument     = interfaces.MemberDocument
	ProgressionReader  = interfaces.ProgressionReader
	ProgressionService = interfaces.ProgressionService
)
