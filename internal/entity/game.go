package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	boardSide = 3
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the board, the mark whose turn is active, and the outcome.
// Cells are stored row-major: cell = row*3 + col.
type Game struct {
	Board  [9]string `json:"board"`
	Turn   string    `json:"player_turn"`
	Winner string    `json:"winner"`
	Status string    `json:"status"`
}

// NewGame - returns a fresh game with an empty board and startingMark active.
// The mark must already be canonical (see ParseMark).
func NewGame(startingMark string) *Game {
	return &Game{
		Board:  [9]string{},
		Turn:   startingMark,
		Status: StatusOngoing,
	}
}

// PlaceMark - writes the active mark into (row, col) and toggles the turn.
// The operation is total: out-of-range coordinates are rejected here rather
// than left to the caller, so the engine is safe to drive directly.
func (that *Game) PlaceMark(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if row < 0 || row >= boardSide || col < 0 || col >= boardSide {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOutOfRange, row, col)
	}

	cell := row*boardSide + col
	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.Board[cell] = that.Turn
	that.Turn = toggleMark(that.Turn)
	that.updateStatus()

	return nil
}

// Result - the winning mark, PlayerTie on a full board with no winner,
// or EmptyCell while the game continues.
func (that *Game) Result() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if !that.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

// WinningMark - the winning mark, or EmptyCell when nobody has won.
func (that *Game) WinningMark() string {
	if result := that.Result(); result == PlayerX || result == PlayerO {
		return result
	}
	return EmptyCell
}

func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// updateStatus - recomputes Status and Winner after a successful placement.
func (that *Game) updateStatus() {
	switch result := that.Result(); result {
	case PlayerX, PlayerO:
		that.Winner = result
		that.Status = StatusFinished
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
	default:
		that.Status = StatusOngoing
	}
}

// Render - the board as three lines of "c0 | c1 | c2", empty cells as a
// space. Pure; callers own where the text goes.
func (that *Game) Render() string {
	var builder strings.Builder

	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide)
		for col := 0; col < boardSide; col++ {
			cell := that.Board[row*boardSide+col]
			if cell == EmptyCell {
				cell = " "
			}
			cells = append(cells, cell)
		}
		builder.WriteString(strings.Join(cells, " | "))
		builder.WriteString("\n")
	}

	return builder.String()
}
