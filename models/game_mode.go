package models

// GameMode is the closed set of leaderboard categories. Values outside
// this set are rejected at the boundary: score submissions fail and
// leaderboard reads return an empty result without touching storage.
type GameMode string

// Known game modes.
const (
	ModeEasy    GameMode = "easy"
	ModeNormal  GameMode = "normal"
	ModeHard    GameMode = "hard"
	ModeEndless GameMode = "endless"
)

// GameModes lists every known game mode in display order.
var GameModes = []GameMode{ModeEasy, ModeNormal, ModeHard, ModeEndless}

// Valid reports whether m is a member of the known game mode set.
func (m GameMode) Valid() bool {
	switch m {
	case ModeEasy, ModeNormal, ModeHard, ModeEndless:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (m GameMode) String() string {
	return string(m)
}

// Timeframe restricts a leaderboard read to records updated within a
// rolling window. Like [GameMode] it is a closed set validated at the
// boundary; an unknown value is treated as [TimeframeAll].
type Timeframe string

// Known leaderboard timeframes.
const (
	TimeframeAll    Timeframe = "all"
	TimeframeDaily  Timeframe = "daily"
	TimeframeWeekly Timeframe = "weekly"
)

// Valid reports whether t is a member of the known timeframe set.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeAll, TimeframeDaily, TimeframeWeekly:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (t Timeframe) String() string {
	return string(t)
}
