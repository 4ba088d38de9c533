package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// ParseMark - converts a user-supplied designator into a canonical mark.
// It never falls back on its own: callers decide whether an ErrInvalidMark
// means "use the default" or "reject the input".
func ParseMark(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case PlayerX:
		return PlayerX, nil
	case PlayerO:
		return PlayerO, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
