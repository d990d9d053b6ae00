package model

import "time"

// ResultID uniquely identifies a recorded game result
type ResultID string

// GameType is the closed set of games a result can belong to
type GameType string

const (
	GameTypeMathPractice GameType = "MathPractice"
	GameTypeCounting     GameType = "Counting"
	GameTypeJackSparrow  GameType = "JackSparrow"
)

// GameTypes lists every known game type in a stable order
var GameTypes = []GameType{
	GameTypeMathPractice,
	GameTypeCounting,
	GameTypeJackSparrow,
}

// ValidGameType reports whether g is a member of the game type enum
func ValidGameType(g GameType) bool {
	for _, known := range GameTypes {
		if g == known {
			return true
		}
	}
	return false
}

// GameResult is one recorded play outcome for a user.
// Results are immutable once stored; there are no update or delete
// operations on individual records.
type GameResult struct {
	ID        ResultID
	UserID    UserID
	GameType  GameType
	Score     int
	Trophy    *string // optional award label, nil when none was earned
	CreatedAt time.Time
}
