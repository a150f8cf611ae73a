// Package eval implements the static evaluator: material, generated
// piece-square tables, material combinations, pawn-structure terms,
// middlegame king safety, and the tapered middlegame/endgame blend.
// Evaluation is side-to-move relative.
//
// Parameters are process-wide and read-only once the engine starts:
// Load reads an optional JSON override file if one is present,
// otherwise the package's built-in defaults stay in effect.
package eval

import (
	"encoding/json"
	"os"

	"chessengine/board"
	"chessengine/internal/xmath"
)

// Local aliases for the piece-type constants used to index Params'
// per-piece arrays, so this package reads naturally without a
// board. prefix on every table lookup.
const (
	Pawn   = board.Pawn
	Knight = board.Knight
	Bishop = board.Bishop
	Rook   = board.Rook
	Queen  = board.Queen
	King   = board.King
)

// Params bundles every tunable evaluation weight. All of it is built
// from a small set of base profiles in pst.go rather than hand-tuned
// per-square values.
type Params struct {
	PieceValueMG [7]int
	PieceValueEG [7]int

	FileBase   [8]int
	RankBase   [8]int
	CenterBase [64]int

	FileMultiplierMG, FileMultiplierEG     [7]int
	RankMultiplierMG, RankMultiplierEG     [7]int
	CenterMultiplierMG, CenterMultiplierEG [7]int
	PieceWeightMG, PieceWeightEG           [7]int

	BishopPairMG, BishopPairEG     int
	KnightPairPenaltyMG            int
	RookPairPenaltyMG              int
	KnightPerMissingPawnMG         int
	RookPerMissingPawnMG           int

	PassedPawnRankMG, PassedPawnRankEG [8]int
	PassedPawnSupportedBonus           int
	DoubledPawnPenaltyMG               int
	DoubledPawnPenaltyEG                int
	WeakPawnFilePenaltyMG              [8]int
	WeakPawnOpenFileExtraMG            int

	KingShieldFirstRow  int
	KingShieldSecondRow int
}

// Default returns the built-in parameter set used when no JSON
// override file is present.
func Default() *Params {
	p := &Params{
		PieceValueMG: [7]int{0, 100, 320, 330, 500, 900, 0},
		PieceValueEG: [7]int{0, 100, 320, 330, 500, 900, 0},

		FileBase: [8]int{-4, -2, 0, 2, 2, 0, -2, -4},
		RankBase: [8]int{0, 1, 2, 4, 6, 9, 12, 0},

		BishopPairMG: 25, BishopPairEG: 40,
		KnightPairPenaltyMG: 8,
		RookPairPenaltyMG:   6,

		KnightPerMissingPawnMG: 2,
		RookPerMissingPawnMG:   -2,

		PassedPawnRankMG: [8]int{0, 2, 4, 10, 18, 30, 48, 0},
		PassedPawnRankEG: [8]int{0, 4, 8, 18, 32, 56, 84, 0},
		PassedPawnSupportedBonus: 12,

		DoubledPawnPenaltyMG: 8,
		DoubledPawnPenaltyEG: 16,

		WeakPawnFilePenaltyMG:   [8]int{10, 10, 10, 10, 10, 10, 10, 10},
		WeakPawnOpenFileExtraMG: 6,

		KingShieldFirstRow:  8,
		KingShieldSecondRow: 4,
	}

	for t := board.Pawn; t <= board.King; t++ {
		p.FileMultiplierMG[t] = 3
		p.FileMultiplierEG[t] = 1
		p.RankMultiplierMG[t] = 1
		p.RankMultiplierEG[t] = 1
		p.CenterMultiplierMG[t] = 4
		p.CenterMultiplierEG[t] = 1
		p.PieceWeightMG[t] = 1
		p.PieceWeightEG[t] = 1
	}
	// Knights and bishops weigh central squares more heavily than the
	// other pieces; kings avoid the center in the middlegame and seek
	// it in the endgame; pawns gain value by rank only in the endgame.
	p.CenterMultiplierMG[Knight] = 6
	p.CenterMultiplierMG[Bishop] = 5
	p.CenterMultiplierMG[King] = -8
	p.CenterMultiplierEG[King] = 3
	p.RankMultiplierMG[Pawn] = 0
	p.RankMultiplierEG[Pawn] = 3

	initCenterBase(p)
	return p
}

func initCenterBase(p *Params) {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq&7, sq>>3
		df, dr := centerDist(file), centerDist(rank)
		p.CenterBase[sq] = 7 - (df + dr)
	}
}

// centerDist returns coord's distance to the nearer of the two center
// lines (indices 3 and 4 of an 8-wide file or rank).
func centerDist(coord int) int {
	return xmath.Min(xmath.Abs(coord-3), xmath.Abs(coord-4))
}

// Load reads a JSON parameter file produced by Save, overlaying it on
// a fresh Default(): fields absent from the file keep their default
// values. A missing or unreadable file is returned as an error;
// callers fall back to Default when the engine should run with its
// built-in defaults.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := Default()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p to path as indented JSON, atomically (write to a temp
// file, then rename), matching tuner/io_json.go's SaveJSON.
func Save(p *Params, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
