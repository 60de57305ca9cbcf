package progression

import "math"

const (
	// MinLevel is the level a new member starts at and the floor for decreases.
	MinLevel = 1
	// MaxLevel is the highest reachable level.
	MaxLevel = 50

	baseThreshold   = 450
	thresholdGrowth = 1.15
)

// Threshold returns the experience needed to leave level. Levels outside
// [MinLevel-1, MaxLevel] are treated as the nearest bound.
func Threshold(level int) int {
	level = max(MinLevel-1, min(level, MaxLevel))
	return int(math.Floor(baseThreshold * math.Pow(thresholdGrowth, float64(level-1))))
}

func canLevelUp(level, experience int) bool {
	return experience >= Threshold(level) && level < MaxLevel
}

func canLevelDown(level, experience int) bool {
	return experience < Threshold(level-1) && level > MinLevel
}

func clampLevel(level int) int {
	switch {
	case level < MinLevel:
		return MinLevel
	case level > MaxLevel:
		return MaxLevel
	}
	return level
}

// raiseLevel adds delta to level and clamps the result to [MinLevel, MaxLevel].
// The stored level is clamped first so the bound checks cannot overflow.
func raiseLevel(level, delta int) int {
	level = clampLevel(level)
	switch {
	case delta >= MaxLevel-level:
		return MaxLevel
	case delta <= MinLevel-level:
		return MinLevel
	}
	return level + delta
}

// lowerLevel subtracts delta from level and clamps the result to
// [MinLevel, MaxLevel].
func lowerLevel(level, delta int) int {
	level = clampLevel(level)
	switch {
	case delta >= level-MinLevel:
		return MinLevel
	case delta <= level-MaxLevel:
		return MaxLevel
	}
	return level - delta
}
