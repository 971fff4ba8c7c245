package game

import (
	"fmt"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
)

// Board owns token occupancy and the mill bookkeeping. It is not safe for
// concurrent use.
type Board struct {
	occupied map[entity.Position]*entity.Token

	// active holds the mill instance id of every complete line, 0 otherwise.
	active  [entity.MillLineCount]int
	millSeq int
}

func NewBoard() *Board {
	return &Board{
		occupied: make(map[entity.Position]*entity.Token, entity.PositionCount),
	}
}

// PlaceToken puts a new token of colour on an empty position.
func (that *Board) PlaceToken(position entity.Position, colour entity.Colour) error {
	if err := validatePosition(position); err != nil {
		return err
	}

	if that.IsOccupied(position) {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, position)
	}

	that.occupied[position] = entity.NewToken(colour, position)

	return nil
}

// MoveToken relocates the token on from to the empty position to. Every
// active mill the token belonged to is broken. Adjacency is the caller's
// concern.
func (that *Board) MoveToken(from, to entity.Position) error {
	if err := validatePosition(from); err != nil {
		return err
	}

	if err := validatePosition(to); err != nil {
		return err
	}

	token, ok := that.occupied[from]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrPositionEmpty, from)
	}

	if that.IsOccupied(to) {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, to)
	}

	that.breakMills(token)

	delete(that.occupied, from)
	token.Position = to
	that.occupied[to] = token

	return nil
}

// DetectMill checks the lines through position and activates every line that
// just became complete. A line that is already an active mill does not count
// again. Returns true iff at least one new mill formed.
func (that *Board) DetectMill(position entity.Position) bool {
	token, ok := that.occupied[position]
	if !ok {
		return false
	}

	formed := false
	for _, line := range entity.LinesThrough(position) {
		if that.active[line] != 0 || !that.isLineOf(line, token.Colour) {
			continue
		}

		that.millSeq++
		that.active[line] = that.millSeq
		for _, p := range entity.MillLine(line) {
			that.occupied[p].JoinMill(that.millSeq)
		}

		formed = true
	}

	return formed
}

// CanBeRemoved reports whether the token on target, which must be of colour,
// may be taken. A mill-protected token is removable only when every token of
// that colour is mill-protected.
func (that *Board) CanBeRemoved(target entity.Position, colour entity.Colour) bool {
	token, ok := that.occupied[target]
	if !ok || token.Colour != colour {
		return false
	}

	if !token.IsMillProtected() {
		return true
	}

	for _, other := range that.occupied {
		if other.Colour == colour && !other.IsMillProtected() {
			return false
		}
	}

	return true
}

// RemoveToken takes the token on position off the board and dissolves every
// mill it was part of.
func (that *Board) RemoveToken(position entity.Position) error {
	if err := validatePosition(position); err != nil {
		return err
	}

	token, ok := that.occupied[position]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrPositionEmpty, position)
	}

	if !that.CanBeRemoved(position, token.Colour) {
		return fmt.Errorf("%w: %s", apperror.ErrTokenProtectedByMill, position)
	}

	that.breakMills(token)
	delete(that.occupied, position)

	return nil
}

// LegalDestinations returns the empty neighbours of position in topology order.
func (that *Board) LegalDestinations(position entity.Position) []entity.Position {
	if !position.IsValid() {
		return nil
	}

	destinations := make([]entity.Position, 0, 4)
	for _, p := range entity.Adjacent(position) {
		if !that.IsOccupied(p) {
			destinations = append(destinations, p)
		}
	}

	return destinations
}

func (that *Board) IsOccupied(position entity.Position) bool {
	_, ok := that.occupied[position]
	return ok
}

// TokenAt returns a copy of the token on position.
func (that *Board) TokenAt(position entity.Position) (entity.Token, bool) {
	token, ok := that.occupied[position]
	if !ok {
		return entity.Token{}, false
	}

	return *token, true
}

// Tokens returns copies of the tokens of colour in position order. NoColour selects every token.
func (that *Board) Tokens(colour entity.Colour) []entity.Token {
	tokens := make([]entity.Token, 0, len(that.occupied))
	for _, p := range entity.AllPositions() {
		token, ok := that.occupied[p]
		if ok && (colour == entity.NoColour || token.Colour == colour) {
			tokens = append(tokens, *token)
		}
	}

	return tokens
}

func (that *Board) EmptyPositions() []entity.Position {
	positions := make([]entity.Position, 0, entity.PositionCount-len(that.occupied))
	for _, p := range entity.AllPositions() {
		if !that.IsOccupied(p) {
			positions = append(positions, p)
		}
	}

	return positions
}

func (that *Board) Count(colour entity.Colour) int {
	count := 0
	for _, token := range that.occupied {
		if token.Colour == colour {
			count++
		}
	}

	return count
}

// Len returns the number of occupied positions.
func (that *Board) Len() int {
	return len(that.occupied)
}

// ActiveMills returns the lines that currently form a mill.
func (that *Board) ActiveMills() [][3]entity.Position {
	var mills [][3]entity.Position
	for line, id := range that.active {
		if id != 0 {
			mills = append(mills, entity.MillLine(line))
		}
	}

	return mills
}

// Copy returns a deep copy of the board.
func (that *Board) Copy() *Board {
	board := &Board{
		occupied: make(map[entity.Position]*entity.Token, len(that.occupied)),
		active:   that.active,
		millSeq:  that.millSeq,
	}

	for p, token := range that.occupied {
		tokenCopy := *token
		board.occupied[p] = &tokenCopy
	}

	return board
}

// breakMills deactivates every mill token belongs to and drops the membership
// from all of its line-mates.
func (that *Board) breakMills(token *entity.Token) {
	for _, id := range token.Mills() {
		line := that.lineOf(id)
		if line < 0 {
			token.LeaveMill(id)
			continue
		}

		for _, p := range entity.MillLine(line) {
			if mate, ok := that.occupied[p]; ok {
				mate.LeaveMill(id)
			}
		}

		that.active[line] = 0
	}
}

func (that *Board) lineOf(id int) int {
	for line, active := range that.active {
		if active == id {
			return line
		}
	}

	return -1
}

func (that *Board) isLineOf(line int, colour entity.Colour) bool {
	for _, p := range entity.MillLine(line) {
		token, ok := that.occupied[p]
		if !ok || token.Colour != colour {
			return false
		}
	}

	return true
}

func validatePosition(position entity.Position) error {
	if !position.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	return nil
}
