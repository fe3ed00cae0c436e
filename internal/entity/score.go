package entity

// Side is the party a finished round is credited to.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
	SideTie      Side = "tie"
)

// SideOf maps a board mark to the side that plays it.
func SideOf(mark Cell) Side {
	switch mark {
	case PlayerX:
		return SidePlayer
	case PlayerO:
		return SideOpponent
	default:
		return SideTie
	}
}

// Score is the session tally. Counters only grow.
type Score struct {
	Player   uint `json:"player"`
	Opponent uint `json:"opponent"`
	Tie      uint `json:"tie"`
}

func (that *Score) Add(side Side) {
	switch side {
	case SidePlayer:
		that.Player++
	case SideOpponent:
		that.Opponent++
	case SideTie:
		that.Tie++
	}
}

func (that Score) Rounds() uint {
	return that.Player + that.Opponent + that.Tie
}

// Snapshot is a read-only copy of the engine state used for rendering.
type Snapshot struct {
	Board      Board `json:"board"`
	Score      Score `json:"score"`
	InProgress bool  `json:"in_progress"`
}

// Round describes a finished round.
type Round struct {
	SessionID string `json:"session_id"`
	Number    uint   `json:"number"`
	Winner    Side   `json:"winner"`
	Board     Board  `json:"board"`
	Score     Score  `json:"score"`
}
