package search

import "github.com/corvidchess/corvid/pkg/board"

// killerSlots is K in "up to K slots, dedup'd" (§4.H move ordering).
const killerSlots = 2

// KillerTable remembers, per ply, the quiet moves that most recently caused a beta cut
// at that ply — a cheap proxy for "probably good here too" across sibling nodes.
type KillerTable struct {
	moves [board.MaxSearchDepth][killerSlots]board.Move
}

func NewKillerTable() *KillerTable {
	kt := &KillerTable{}
	for p := range kt.moves {
		for i := range kt.moves[p] {
			kt.moves[p][i] = board.NoMove
		}
	}
	return kt
}

// Add records m as a killer at ply, pushing older entries down and deduping.
func (kt *KillerTable) Add(ply int, m board.Move) {
	if ply >= len(kt.moves) {
		return
	}
	slots := &kt.moves[ply]
	if slots[0] == m {
		return
	}
	for i := killerSlots - 1; i > 0; i-- {
		slots[i] = slots[i-1]
	}
	slots[0] = m
}

// Is reports whether m is a killer at ply.
func (kt *KillerTable) Is(ply int, m board.Move) bool {
	if ply >= len(kt.moves) {
		return false
	}
	for _, k := range kt.moves[ply] {
		if k == m {
			return true
		}
	}
	return false
}
