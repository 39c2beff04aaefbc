package board

import "fmt"

// Score is a side-to-move-relative centipawn evaluation. The search's working width is
// i32 (§7); only the transposition table narrows it to i16 on storage, via ClampI16.
type Score int32

const (
	// MaxEval is the evaluation magnitude reserved for "certain win"; mate scores are
	// encoded as ±(MaxEval − ply), per §7.
	MaxEval Score = 30000
	MinEval Score = -MaxEval

	// MaxSearchDepth bounds ply-indexed arrays (PV table, killers) — §5 requires ≥100.
	MaxSearchDepth = 128
)

// IsMateScore reports whether s is in the mate-score band, |eval| > MaxEval-MaxSearchDepth.
func (s Score) IsMateScore() bool {
	return s > MaxEval-MaxSearchDepth || s < -(MaxEval-MaxSearchDepth)
}

// MateIn returns the number of full moves to mate implied by a mate score (positive for
// the side to move winning, negative for losing), or 0 if s isn't a mate score.
func (s Score) MateIn() int {
	if !s.IsMateScore() {
		return 0
	}
	if s > 0 {
		plies := int(MaxEval - s)
		return (plies + 1) / 2
	}
	plies := int(MaxEval + s)
	return -(plies + 1) / 2
}

// ClampI16 narrows a Score to the range storable in a TranspositionEntry (§7).
func ClampI16(s Score) int16 {
	switch {
	case s > 32767:
		return 32767
	case s < -32768:
		return -32768
	default:
		return int16(s)
	}
}

func (s Score) String() string {
	if s.IsMateScore() {
		return fmt.Sprintf("mate %d", s.MateIn())
	}
	return fmt.Sprintf("cp %d", s)
}
