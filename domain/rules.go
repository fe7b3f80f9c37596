package domain

import "time"

// GameRules holds the tunable parameters of a game. Instances are built once
// and injected, never mutated, so rule variants can coexist across games.
type GameRules struct {
	WinningScore int   // cumulative team score that ends the game
	StakeLadder  []int // stake per wager level, index 0 is the unraised hand
	OpeningStake int   // stake a fresh hand starts at
	BotThinkMin  time.Duration
	BotThinkMax  time.Duration
}

// DefaultRules returns the standard ruleset: play to 12, stakes 1/4/8/10/12.
func DefaultRules() GameRules {
	return GameRules{
		WinningScore: 12,
		StakeLadder:  []int{1, 4, 8, 10, 12},
		OpeningStake: 1,
		BotThinkMin:  500 * time.Millisecond,
		BotThinkMax:  2 * time.Second,
	}
}

// StakeAt returns the stake for a wager level, clamped to the ladder
func (r GameRules) StakeAt(level WagerLevel) int {
	idx := int(level)
	if idx < 0 || idx >= len(r.StakeLadder) {
		return r.StakeLadder[len(r.StakeLadder)-1]
	}
	return r.StakeLadder[idx]
}

// MaxWagerLevel returns the terminal wager level for this ladder
func (r GameRules) MaxWagerLevel() WagerLevel {
	return WagerLevel(len(r.StakeLadder) - 1)
}

// LastHandScore is the score at which a team is one winning hand away from
// the game: the forced-wager rules kick in from here.
func (r GameRules) LastHandScore() int {
	return r.WinningScore - 2
}
