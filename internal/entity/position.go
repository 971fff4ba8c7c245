package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
)

// Position identifies one of the 24 board cells. Values run ring by ring
// (outer, middle, inner), clockwise from the top-left corner of each ring.
type Position uint8

const (
	A7 Position = iota
	D7
	G7
	G4
	G1
	D1
	A1
	A4

	B6
	D6
	F6
	F4
	F2
	D2
	B2
	B4

	C5
	D5
	E5
	E4
	E3
	D3
	C3
	C4

	PositionCount = 24

	InvalidPosition Position = 255
)

// coordinates maps a position to its file (0 = a) and rank (0 = 1) on the 7x7 grid.
var coordinates = [PositionCount][2]int{
	A7: {0, 6}, D7: {3, 6}, G7: {6, 6}, G4: {6, 3}, G1: {6, 0}, D1: {3, 0}, A1: {0, 0}, A4: {0, 3},
	B6: {1, 5}, D6: {3, 5}, F6: {5, 5}, F4: {5, 3}, F2: {5, 1}, D2: {3, 1}, B2: {1, 1}, B4: {1, 3},
	C5: {2, 4}, D5: {3, 4}, E5: {4, 4}, E4: {4, 3}, E3: {4, 2}, D3: {3, 2}, C3: {2, 2}, C4: {2, 3},
}

var allPositions = func() []Position {
	positions := make([]Position, PositionCount)
	for i := range positions {
		positions[i] = Position(i)
	}
	return positions
}()

// AllPositions returns the 24 cells in ring order. The slice is a copy.
func AllPositions() []Position {
	positions := make([]Position, len(allPositions))
	copy(positions, allPositions)
	return positions
}

func (p Position) IsValid() bool {
	return p < PositionCount
}

// Coordinates returns the file and rank of p on the 7x7 grid, zero based.
func (p Position) Coordinates() (int, int) {
	c := coordinates[p.mustBeValid()]
	return c[0], c[1]
}

// Ring returns 0 for the outer square, 1 for the middle and 2 for the inner one.
func (p Position) Ring() int {
	return int(p.mustBeValid()) / 8
}

func (p Position) String() string {
	if !p.IsValid() {
		return "<invalid position>"
	}
	c := coordinates[p]
	return fmt.Sprintf("%c%d", 'a'+c[0], c[1]+1)
}

// ParsePosition reads algebraic notation such as "a1" or "D7".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return InvalidPosition, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
	}

	file, rank := int(s[0]-'a'), int(s[1]-'1')
	for p, c := range coordinates {
		if c[0] == file && c[1] == rank {
			return Position(p), nil
		}
	}

	return InvalidPosition, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
}

func (p Position) mustBeValid() Position {
	if !p.IsValid() {
		panic(fmt.Errorf("position %d is outside the board", p))
	}
	return p
}
