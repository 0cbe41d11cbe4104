// Package tetris implements a line-driven Tetris engine: a fixed 20x10 board,
// the seven canonical tetrominoes, collision checks, line clears and scoring.
//
// Boards are plain arrays, so every operation that returns a Board hands back
// an independent copy and never mutates its input.
package tetris

import "strings"

const (
	Rows = 20
	Cols = 10
)

// Board is the locked playfield, indexed [row][col] with row 0 at the top.
type Board [Rows][Cols]bool

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// CanPlace reports whether p translated by (dx, dy) keeps every filled cell
// inside the board and over empty cells.
func CanPlace(b Board, p Piece, dx, dy int) bool {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			x := p.X + c + dx
			y := p.Y + r + dy
			if x < 0 || x >= Cols || y < 0 || y >= Rows {
				return false
			}
			if b[y][x] {
				return false
			}
		}
	}
	return true
}

// Lock merges the filled cells of p into a copy of b.
func Lock(b Board, p Piece) Board {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			x, y := p.X+c, p.Y+r
			if x < 0 || x >= Cols || y < 0 || y >= Rows {
				continue
			}
			b[y][x] = true
		}
	}
	return b
}

// ClearFullRows drops every full row, shifts the rest down and pads the top
// with empty rows. It returns the new board and the number of rows removed.
func ClearFullRows(b Board) (Board, int) {
	var out Board
	dst := Rows - 1
	for src := Rows - 1; src >= 0; src-- {
		if rowFull(b[src]) {
			continue
		}
		out[dst] = b[src]
		dst--
	}
	return out, dst + 1
}

func rowFull(row [Cols]bool) bool {
	for _, filled := range row {
		if !filled {
			return false
		}
	}
	return true
}

const (
	cellEmpty  = "·"
	cellLocked = "█"
	cellActive = "▓"
)

// Render draws the board with p overlaid, framed by side walls and a floor.
// Neither argument is modified; p may be nil.
func Render(b Board, p *Piece) []string {
	var active [Rows][Cols]bool
	if p != nil {
		for r, row := range p.Shape {
			for c, filled := range row {
				x, y := p.X+c, p.Y+r
				if filled && x >= 0 && x < Cols && y >= 0 && y < Rows {
					active[y][x] = true
				}
			}
		}
	}

	out := make([]string, 0, Rows+1)
	var sb strings.Builder
	for y := range Rows {
		sb.Reset()
		sb.WriteString("│")
		for x := range Cols {
			switch {
			case active[y][x]:
				sb.WriteString(cellActive)
			case b[y][x]:
				sb.WriteString(cellLocked)
			default:
				sb.WriteString(cellEmpty)
			}
		}
		sb.WriteString("│")
		out = append(out, sb.String())
	}
	out = append(out, "└"+strings.Repeat("─", Cols)+"┘")
	return out
}
