package engine

import "github.com/lgbarn/othello-go/internal/othello"

// Flips returns the opponent disks captured by player placing a disk at pos.
// Each ray from pos collects a contiguous run of opponent disks; the run is
// captured only if it ends on a player disk. Runs ending on an empty cell or
// the board edge capture nothing.
func Flips(player, opponent uint64, pos int) uint64 {
	origin := othello.Bit(pos)
	var flips uint64

	for _, d := range directions {
		var run uint64
		cur := d.shift(origin)
		for cur&opponent != 0 {
			run |= cur
			cur = d.shift(cur)
		}
		if cur&player != 0 {
			flips |= run
		}
	}
	return flips
}

// ApplyAndFlip places a player disk at pos and moves every captured disk from
// opponent to player. The flip sets of all rays are unioned and applied once.
// pos must be a legal move for player; this is not checked.
func ApplyAndFlip(player, opponent othello.DiskSet, pos int) (othello.DiskSet, othello.DiskSet) {
	flips := Flips(player.Mask, opponent.Mask, pos)
	player = player.Set(pos)
	player.Mask |= flips
	opponent.Mask &^= flips
	return player, opponent
}

// Play is ApplyAndFlip on bare masks, used by the search hot path.
func Play(player, opponent uint64, pos int) (uint64, uint64) {
	flips := Flips(player, opponent, pos)
	return player | othello.Bit(pos) | flips, opponent &^ flips
}
