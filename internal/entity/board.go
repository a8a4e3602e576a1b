package entity

import (
	"strings"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/apperror"
)

const (
	BoardWidth  = 6
	BoardHeight = 5

	// playable area, inclusive
	FirstColumn = 1
	LastColumn  = 4
	lastRow     = 3

	lineLength = 4
)

type Tile uint8

const (
	TileEmpty Tile = iota
	TileCookie
	TileMilk
	TileWall
)

const (
	GlyphWall   = "⬜"
	GlyphEmpty  = "⬛"
	GlyphCookie = "🍪"
	GlyphMilk   = "🥛"
)

func (that Tile) Glyph() string {
	switch that {
	case TileCookie:
		return GlyphCookie
	case TileMilk:
		return GlyphMilk
	case TileWall:
		return GlyphWall
	default:
		return GlyphEmpty
	}
}

type cell struct {
	x, y int
}

// winLineGroups lists every line in scan order. Lines sharing a group are
// checked for Cookie together before any of them is checked for Milk.
var winLineGroups = buildWinLineGroups()

func buildWinLineGroups() [][][lineLength]cell {
	groups := make([][][lineLength]cell, 0, 2*lineLength+1)

	for x := FirstColumn; x <= LastColumn; x++ {
		var line [lineLength]cell
		for y := 0; y <= lastRow; y++ {
			line[y] = cell{x, y}
		}
		groups = append(groups, [][lineLength]cell{line})
	}

	for y := 0; y <= lastRow; y++ {
		var line [lineLength]cell
		for x := FirstColumn; x <= LastColumn; x++ {
			line[x-FirstColumn] = cell{x, y}
		}
		groups = append(groups, [][lineLength]cell{line})
	}

	return append(groups, [][lineLength]cell{
		{{1, 0}, {2, 1}, {3, 2}, {4, 3}},
		{{4, 0}, {3, 1}, {2, 2}, {1, 3}},
	})
}

// Board is indexed as Grid[column][row]; row 0 is the top.
type Board struct {
	Grid [BoardWidth][BoardHeight]Tile
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset walls the border and empties the playable area.
func (that *Board) Reset() {
	for x := range BoardWidth {
		for y := range BoardHeight {
			if x < FirstColumn || x > LastColumn || y > lastRow {
				that.Grid[x][y] = TileWall
			} else {
				that.Grid[x][y] = TileEmpty
			}
		}
	}
}

// Display renders one line per row followed by the result line, if any.
func (that *Board) Display() string {
	var sb strings.Builder

	for y := range BoardHeight {
		for x := range BoardWidth {
			sb.WriteString(that.Grid[x][y].Glyph())
		}
		sb.WriteByte('\n')
	}

	if winner, ok := that.Winner(); ok {
		sb.WriteString(winner.Glyph() + " wins!\n")
	} else if that.IsFull() {
		sb.WriteString("No winner.\n")
	}

	return sb.String()
}

// Winner scans columns, then rows, then diagonals and reports the first
// team that owns a whole line.
func (that *Board) Winner() (Team, bool) {
	for _, group := range winLineGroups {
		for _, team := range []Team{TeamCookie, TeamMilk} {
			for _, line := range group {
				if that.ownsLine(team.Tile(), line) {
					return team, true
				}
			}
		}
	}

	return "", false
}

func (that *Board) ownsLine(tile Tile, line [lineLength]cell) bool {
	for _, c := range line {
		if that.Grid[c.x][c.y] != tile {
			return false
		}
	}

	return true
}

func (that *Board) IsColumnFull(column int) bool {
	for y := 0; y <= lastRow; y++ {
		if that.Grid[column][y] == TileEmpty {
			return false
		}
	}

	return true
}

func (that *Board) IsFull() bool {
	for x := FirstColumn; x <= LastColumn; x++ {
		if !that.IsColumnFull(x) {
			return false
		}
	}

	return true
}

// Place drops the team's tile into the lowest empty cell of column.
// The caller must keep column within FirstColumn..LastColumn.
func (that *Board) Place(team Team, column int) error {
	if _, ok := that.Winner(); ok {
		return apperror.ErrHasWinner
	}

	if that.IsFull() {
		return apperror.ErrBoardFull
	}

	if that.IsColumnFull(column) {
		return apperror.ErrColumnFull
	}

	for y := lastRow; y >= 0; y-- {
		if that.Grid[column][y] == TileEmpty {
			that.Grid[column][y] = team.Tile()
			break
		}
	}

	return nil
}

type intner interface {
	Intn(n int) int
}

// Randomize resets the board and fills every playable cell with a coin flip.
// The result is not checked for a winner here.
func (that *Board) Randomize(rng intner) {
	that.Reset()

	for y := 0; y <= lastRow; y++ {
		for x := FirstColumn; x <= LastColumn; x++ {
			if rng.Intn(2) == 1 {
				that.Grid[x][y] = TileCookie
			} else {
				that.Grid[x][y] = TileMilk
			}
		}
	}
}
