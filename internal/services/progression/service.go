package progression

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/metrics"
)

// Operation names used in errors, logs and metrics.
const (
	opAddExperience    = "add_experience"
	opReduceExperience = "reduce_experience"
	opSetExperience    = "set_experience"
	opAddLevel         = "add_level"
	opReduceLevel      = "reduce_level"
	opSetLevel         = "set_level"
	opAddCurrency      = "add_currency"
	opSpendCurrency    = "spend_currency"
	opSetCurrency      = "set_currency"
	opReplace          = "replace"
	opFlush            = "flush"
)

// Service is the process-wide progression table. Construct one with New and
// share the pointer.
type Service struct {
	mu      sync.Mutex
	doc     domain.MemberDocument
	members domain.Table
	dirty   bool

	log     *zap.Logger
	metrics *metrics.Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// New loads the member table from doc and returns a Service over it.
func New(doc domain.MemberDocument, opts ...Option) (*Service, error) {
	if doc == nil {
		return nil, errors.New("progression: nil member document")
	}
	s := &Service{doc: doc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	members, err := doc.Load()
	if err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}
	if members == nil {
		members = domain.Table{}
	}
	s.members = members
	s.metrics.Members(len(members))
	s.log.Debug("member table loaded", zap.Int("members", len(members)))
	return s, nil
}

// GetLevel returns the member's level or 0 if unknown.
func (s *Service) GetLevel(id string) int {
	m, _ := s.Lookup(id)
	return m.Level
}

// GetExperience returns the member's experience or 0 if unknown.
func (s *Service) GetExperience(id string) int {
	m, _ := s.Lookup(id)
	return m.Experience
}

// GetCurrency returns the member's currency or 0 if unknown.
func (s *Service) GetCurrency(id string) int {
	m, _ := s.Lookup(id)
	return m.Currency
}

// Lookup returns a copy of the member's record and whether it exists.
func (s *Service) Lookup(id string) (domain.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	return m, ok
}

// Snapshot returns a copy of the whole table.
func (s *Service) Snapshot() domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.members.Clone()
}

// AddExperience adds amount to the member's experience, creating the member
// first if needed. Reaching the threshold raises the level by one and resets
// experience to 0.
func (s *Service) AddExperience(id string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		m = domain.Member{Level: MinLevel}
		s.members[id] = m
		s.metrics.Members(len(s.members))
		s.log.Debug("member created", zap.String("member", id))
		// A failed creation write is retried, logged and counted by the
		// write below.
		if err := s.doc.Save(s.members); err == nil {
			s.dirty = false
		}
	}

	m.Experience += amount
	if canLevelUp(m.Level, m.Experience) {
		m.Level++
		m.Experience = 0
		s.metrics.LevelUp()
		s.log.Info("member leveled up", zap.String("member", id), zap.Int("level", m.Level))
	}
	s.members[id] = m
	return s.recordLocked(opAddExperience, s.persistLocked(opAddExperience))
}

// ReduceExperience subtracts amount from the member's experience. Falling
// under the previous level's threshold lowers the level by one. Experience is
// clamped to 0 afterwards.
func (s *Service) ReduceExperience(id string, amount int) error {
	return s.update(opReduceExperience, id, func(m *domain.Member) {
		m.Experience -= amount
		if canLevelDown(m.Level, m.Experience) {
			m.Level = clampLevel(m.Level - 1)
			s.metrics.LevelDown()
			s.log.Info("member leveled down", zap.String("member", id), zap.Int("level", m.Level))
		}
		if m.Experience < 0 {
			m.Experience = 0
		}
	})
}

// SetExperience overwrites the member's experience.
func (s *Service) SetExperience(id string, value int) error {
	return s.update(opSetExperience, id, func(m *domain.Member) {
		m.Experience = value
	})
}

// AddLevel raises the member's level by delta. The result is clamped to
// [MinLevel, MaxLevel], also for negative deltas.
func (s *Service) AddLevel(id string, delta int) error {
	return s.update(opAddLevel, id, func(m *domain.Member) {
		m.Level = raiseLevel(m.Level, delta)
	})
}

// ReduceLevel lowers the member's level by delta. The result is clamped to
// [MinLevel, MaxLevel], also for negative deltas.
func (s *Service) ReduceLevel(id string, delta int) error {
	return s.update(opReduceLevel, id, func(m *domain.Member) {
		m.Level = lowerLevel(m.Level, delta)
	})
}

// SetLevel overwrites the member's level.
func (s *Service) SetLevel(id string, value int) error {
	return s.update(opSetLevel, id, func(m *domain.Member) {
		m.Level = value
	})
}

// AddCurrency adds amount to the member's balance.
func (s *Service) AddCurrency(id string, amount int) error {
	return s.update(opAddCurrency, id, func(m *domain.Member) {
		m.Currency += amount
	})
}

// SpendCurrency deducts amount if the member can afford it. It reports false
// with a nil error when the balance is too low; nothing is changed or written
// in that case.
func (s *Service) SpendCurrency(id string, amount int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return false, s.notFoundLocked(opSpendCurrency, id)
	}
	if m.Currency < amount {
		s.metrics.Operation(opSpendCurrency, metrics.ResultDenied)
		return false, nil
	}
	m.Currency -= amount
	s.members[id] = m
	return true, s.recordLocked(opSpendCurrency, s.persistLocked(opSpendCurrency))
}

// SetCurrency overwrites the member's balance.
func (s *Service) SetCurrency(id string, amount int) error {
	return s.update(opSetCurrency, id, func(m *domain.Member) {
		m.Currency = amount
	})
}

// Replace swaps the whole table for t and writes it.
func (s *Service) Replace(t domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = t.Clone()
	s.metrics.Members(len(s.members))
	s.log.Info("member table replaced", zap.Int("members", len(s.members)))
	return s.recordLocked(opReplace, s.persistLocked(opReplace))
}

// Flush writes the current table, clearing a previous write failure.
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recordLocked(opFlush, s.persistLocked(opFlush))
}

// Dirty reports whether the last write failed, leaving the document behind
// the in-memory table.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dirty
}

// update applies fn to an existing member and writes the table.
func (s *Service) update(op, id string, fn func(m *domain.Member)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return s.notFoundLocked(op, id)
	}
	fn(&m)
	s.members[id] = m
	return s.recordLocked(op, s.persistLocked(op))
}

func (s *Service) notFoundLocked(op, id string) error {
	s.metrics.Operation(op, metrics.ResultNotFound)
	return fmt.Errorf("%s %q: %w", op, id, domain.ErrNotFound)
}

func (s *Service) recordLocked(op string, err error) error {
	if err != nil {
		s.metrics.Operation(op, metrics.ResultError)
		return err
	}
	s.metrics.Operation(op, metrics.ResultOK)
	return nil
}

// persistLocked writes the whole table. On failure the table stays as is and
// the service is marked dirty until a later write succeeds.
func (s *Service) persistLocked(op string) error {
	err := s.doc.Save(s.members)
	if err == nil {
		s.dirty = false
		return nil
	}

	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		perr = &domain.PersistenceError{Op: "save", Err: err}
	}
	s.dirty = true
	s.metrics.PersistFailed()
	s.log.Error("saving member data failed", zap.String("op", op), zap.Error(perr))
	return perr
}

// Compile-time assertion that Service implements domain.ProgressionService.
var _ domain.ProgressionService = (*Service)(nil)
