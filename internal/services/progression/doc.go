// Package progression tracks per-member level, experience and currency.
//
// A Service owns the in-memory member table, loaded once from a
// domain.MemberDocument and written back in full after every mutation. One
// mutex guards each read-modify-write-persist sequence.
//
// Rules
//
//   - Leaving level L needs Threshold(L) = floor(450 * 1.15^(L-1)) experience.
//   - AddExperience gains at most one level per call, resets experience to 0
//     on a level up, and never goes past MaxLevel.
//   - ReduceExperience drops at most one level per call when experience falls
//     under Threshold(L-1), then clamps experience to 0.
//   - AddLevel and ReduceLevel keep the result in [MinLevel, MaxLevel] for any
//     delta, negative ones included.
//   - SpendCurrency never lets the balance go negative.
//
// Only AddExperience creates members. Every other mutator returns
// domain.ErrNotFound for an unknown id; readers return 0.
package progression
