package balance

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level outside MinLevel..MaxLevel is used
// where a campaign level is required.
var ErrInvalidLevel = errors.New("balance: invalid level")

// Stage is a point in the campaign: a wave of a level, or the boss fight
// that closes the level.
type Stage struct {
	Level int
	Wave  int
	Boss  bool
}

// String returns a compact label such as "L2W3" or "L2 boss".
func (s Stage) String() string {
	if s.Boss {
		return fmt.Sprintf("L%d boss", s.Level)
	}
	return fmt.Sprintf("L%dW%d", s.Level, s.Wave)
}

// Start returns the first stage of a level.
func Start(level int) (Stage, error) {
	if !IsValidLevel(level) {
		return Stage{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return Stage{Level: level, Wave: 1}, nil
}

// Next returns the stage after s. Waves run 1..WavesPerLevel, then the boss,
// then wave 1 of the next level. After the boss of the final level there is
// no next stage and ok is false.
func Next(s Stage) (next Stage, ok bool) {
	if !s.Boss {
		if s.Wave < WavesPerLevel(s.Level) {
			return Stage{Level: s.Level, Wave: s.Wave + 1}, true
		}
		return Stage{Level: s.Level, Wave: s.Wave, Boss: true}, true
	}
	if s.Level >= MaxLevel {
		return s, false
	}
	return Stage{Level: s.Level + 1, Wave: 1}, true
}

// Campaign returns every stage from the start of level 1 through the final
// boss.
func Campaign() []Stage {
	s := Stage{Level: MinLevel, Wave: 1}
	stages := []Stage{s}
	for {
		next, ok := Next(s)
		if !ok {
			return stages
		}
		stages = append(stages, next)
		s = next
	}
}
