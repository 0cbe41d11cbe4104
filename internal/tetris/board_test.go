package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledCount(b Board) int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, filledCount(b))
	assert.Len(t, b, Rows)
	assert.Len(t, b[0], Cols)
}

func TestCanPlaceBounds(t *testing.T) {
	b := NewBoard()
	o := Piece{Kind: KindO, Shape: ShapeOf(KindO)}

	tests := []struct {
		name   string
		x, y   int
		dx, dy int
		want   bool
	}{
		{"top left", 0, 0, 0, 0, true},
		{"bottom right", Cols - 2, Rows - 2, 0, 0, true},
		{"past left wall", 0, 0, -1, 0, false},
		{"past right wall", Cols - 2, 0, 1, 0, false},
		{"above ceiling", 0, 0, 0, -1, false},
		{"below floor", 0, Rows - 2, 0, 1, false},
		{"translated inside", 3, 3, 2, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := o
			p.X, p.Y = tt.x, tt.y
			assert.Equal(t, tt.want, CanPlace(b, p, tt.dx, tt.dy))
		})
	}
}

func TestCanPlaceOverlap(t *testing.T) {
	b := NewBoard()
	b[5][5] = true

	p := Piece{Kind: KindO, Shape: ShapeOf(KindO), X: 4, Y: 4}
	assert.False(t, CanPlace(b, p, 0, 0))
	assert.True(t, CanPlace(b, p, -2, 0))

	// Empty cells of the mask may overlap filled board cells.
	tp := Piece{Kind: KindT, Shape: ShapeOf(KindT), X: 5, Y: 5}
	assert.True(t, CanPlace(b, tp, 0, 0))
}

func TestLockValueSemantics(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		var b Board
		for y := range Rows {
			for x := range Cols {
				b[y][x] = rng.IntN(4) == 0
			}
		}
		k := RandomKind(rng)
		p := Spawn(k)
		p.X = rng.IntN(Cols - p.Shape.Width() + 1)
		p.Y = rng.IntN(Rows - p.Shape.Height() + 1)

		before := b
		got := Lock(b, p)

		assert.Equal(t, before, b, "input board must not change")
		for y := range Rows {
			for x := range Cols {
				if b[y][x] {
					assert.True(t, got[y][x], "cell %d,%d lost", x, y)
				}
			}
		}
		for r, row := range p.Shape {
			for c, filled := range row {
				if filled {
					assert.True(t, got[p.Y+r][p.X+c])
				}
			}
		}
	}
}

func TestClearFullRows(t *testing.T) {
	var b Board
	for x := range Cols {
		b[Rows-1][x] = true
		b[Rows-3][x] = true
	}
	b[Rows-2][0] = true
	b[Rows-4][9] = true

	got, n := ClearFullRows(b)
	require.Equal(t, 2, n)
	assert.Len(t, got, Rows)
	assert.True(t, got[Rows-1][0], "partial row shifts to the floor")
	assert.True(t, got[Rows-2][9])
	assert.Equal(t, 2, filledCount(got))
	for y := range Rows {
		assert.False(t, rowFull(got[y]), "row %d still full", y)
	}
}

func TestClearFullRowsTetris(t *testing.T) {
	var b Board
	for y := Rows - 4; y < Rows; y++ {
		for x := range Cols {
			b[y][x] = true
		}
	}
	got, n := ClearFullRows(b)
	assert.Equal(t, 4, n)
	assert.Equal(t, NewBoard(), got)
}

func TestClearFullRowsNone(t *testing.T) {
	var b Board
	b[10][3] = true
	got, n := ClearFullRows(b)
	assert.Equal(t, 0, n)
	assert.Equal(t, b, got)
}

func TestRenderOverlay(t *testing.T) {
	b := NewBoard()
	b[Rows-1][0] = true
	p := Spawn(KindI)

	rows := Render(b, &p)
	require.Len(t, rows, Rows+1)
	assert.Equal(t, "│···▓▓▓▓···│", rows[0])
	assert.Equal(t, "│█·········│", rows[Rows-1])

	// The overlay is presentation only.
	assert.False(t, b[0][3])
}
