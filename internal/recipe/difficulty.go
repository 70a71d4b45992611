package recipe

import "strings"

// Difficulty is a recipe difficulty level. The stored values are the Telugu
// labels used by the recipe documents; unknown values are carried through
// untouched so hand-edited files never fail to load.
type Difficulty string

// Difficulty level constants
const (
	DifficultyEasy   Difficulty = "సులభం"
	DifficultyMedium Difficulty = "మధ్యమం"
	DifficultyHard   Difficulty = "కష్టం"
)

// Difficulties lists the known levels in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "easy",
	DifficultyMedium: "medium",
	DifficultyHard:   "hard",
}

// ParseDifficulty maps either the English name (easy, medium, hard, any case)
// or the Telugu label to the canonical value. ok is false for anything else,
// including the empty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", string(DifficultyEasy):
		return DifficultyEasy, true
	case "medium", string(DifficultyMedium):
		return DifficultyMedium, true
	case "hard", string(DifficultyHard):
		return DifficultyHard, true
	}
	return "", false
}

// English returns the English name of a known level, or the raw value for an
// unknown one.
func (d Difficulty) English() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return string(d)
}

// Known reports whether d is one of the enumerated levels.
func (d Difficulty) Known() bool {
	_, ok := difficultyNames[d]
	return ok
}
