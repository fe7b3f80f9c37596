package bot

// Tuning holds the dials of the standard strategy. Values are strengths on
// the card table's 1..14 scale unless noted.
type Tuning struct {
	// RaiseStrength is the average hand strength above which the bot calls
	// or raises the wager.
	RaiseStrength float64
	// SurrenderStrength is the average hand strength below which the bot
	// gives up a raised hand instead of accepting.
	SurrenderStrength float64
	// SurrenderStakeFloor: never surrender while the stake is at or below
	// this value, the loss is too cheap to dodge.
	SurrenderStakeFloor int
	// BluffPressure raises aggression when the opposing team is within this
	// many points of winning.
	BluffPressure int
	// FoldWhenBeaten makes the bot fold (conceal) instead of discarding its
	// weakest card when it cannot take the round.
	FoldWhenBeaten bool
}

// DefaultTuning is the shipped configuration of the standard strategy.
var DefaultTuning = Tuning{
	RaiseStrength:       9.0,
	SurrenderStrength:   4.0,
	SurrenderStakeFloor: 4,
	BluffPressure:       3,
	FoldWhenBeaten:      true,
}
