package tetris

import "math/rand/v2"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every tetromino in catalog order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "?"
}

// Shape is a row-major occupancy mask.
type Shape [][]bool

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Height() int { return len(s) }

// Equal reports whether two masks have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

var catalog = map[Kind]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
}

// ShapeOf returns a fresh copy of the spawn orientation of k.
func ShapeOf(k Kind) Shape {
	return catalog[k].clone()
}

// Piece is a shape positioned on the board by its top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Spawn places a new piece of kind k horizontally centered on the top row.
func Spawn(k Kind) Piece {
	s := ShapeOf(k)
	return Piece{
		Kind:  k,
		Shape: s,
		X:     (Cols - s.Width()) / 2,
		Y:     0,
	}
}

// RandomKind draws a tetromino uniformly.
func RandomKind(rng *rand.Rand) Kind {
	return Kinds[rng.IntN(len(Kinds))]
}

// Rotate returns s turned 90° clockwise. It does not check the board; callers
// validate the result with CanPlace.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for c := range w {
		out[c] = make([]bool, h)
		for r := range h {
			out[c][h-1-r] = s[r][c]
		}
	}
	return out
}
