package morris

import (
	"fmt"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/game"
)

// totalPlacements is the combined number of placements that ends the placement phase.
const totalPlacements = 2 * entity.PiecesPerPlayer

// Manager runs one game: phases, turns, removals and the final outcome.
// Player 1 plays white and moves first. Manager is not safe for concurrent use.
type Manager struct {
	phase       entity.Phase
	board       *game.Board
	players     [2]*entity.Player
	kinds       [2]entity.PlayerKind
	millPending bool
	placements  int
	outcome     entity.Outcome
}

type Option func(*Manager)

// WithAutomated marks the side playing colour as an automated player.
func WithAutomated(colour entity.Colour) Option {
	return func(m *Manager) {
		if i, ok := seat(colour); ok {
			m.kinds[i] = entity.AutomatedPlayer
		}
	}
}

func NewGame(opts ...Option) *Manager {
	manager := &Manager{
		kinds: [2]entity.PlayerKind{entity.HumanPlayer, entity.HumanPlayer},
	}

	for _, opt := range opts {
		opt(manager)
	}

	manager.NewGame()

	return manager
}

// NewGame discards the current game and starts over in the placement phase.
func (that *Manager) NewGame() {
	that.phase = entity.PhasePlacement
	that.board = game.NewBoard()
	that.players = [2]*entity.Player{
		entity.NewPlayer(entity.White, that.kinds[0]),
		entity.NewPlayer(entity.Black, that.kinds[1]),
	}
	that.millPending = false
	that.placements = 0
	that.outcome = entity.OutcomeNone

	that.players[0].ActivateTurn()
	that.players[1].DeactivateTurn()
}

// PlaceToken puts a token of colour on position. It reports whether the
// placement closed a mill, in which case RemoveToken must follow.
func (that *Manager) PlaceToken(position entity.Position, colour entity.Colour) (bool, error) {
	if err := that.confirmPhase(entity.PhasePlacement); err != nil {
		return false, err
	}

	if err := that.confirmTurn(colour); err != nil {
		return false, err
	}

	if err := that.board.PlaceToken(position, colour); err != nil {
		return false, fmt.Errorf("invalid placement: %w", err)
	}

	that.player(colour).TilePlaced()
	that.placements++

	if that.placements == totalPlacements {
		that.phase = entity.PhaseMovement
	}

	return that.afterAction(position), nil
}

// MoveToken moves a token of the side on turn from one cell to another.
func (that *Manager) MoveToken(from, to entity.Position) (bool, error) {
	if err := that.confirmPhase(entity.PhaseMovement); err != nil {
		return false, err
	}

	if !from.IsValid() || !to.IsValid() {
		return false, fmt.Errorf("invalid move: %w: %s -> %s", apperror.ErrInvalidPosition, from, to)
	}

	colour := that.ColourOnTurn()
	if !that.AnyMovePossible(colour) {
		that.gameOver(entity.OutcomeDraw)
		return false, fmt.Errorf("%w: %s has no legal move, game drawn", apperror.ErrGameFinished, colour)
	}

	if err := that.validateMove(colour, from, to); err != nil {
		return false, fmt.Errorf("invalid move: %w", err)
	}

	if err := that.board.MoveToken(from, to); err != nil {
		return false, fmt.Errorf("invalid move: %w", err)
	}

	return that.afterAction(to), nil
}

// RemoveToken takes an opponent token after a mill. The turn only passes
// once a removal succeeds.
func (that *Manager) RemoveToken(position entity.Position) error {
	if that.phase == entity.PhaseGameOver {
		return apperror.ErrGameFinished
	}

	if !that.millPending {
		return fmt.Errorf("%w: no mill to resolve", apperror.ErrWrongPhase)
	}

	if !position.IsValid() {
		return fmt.Errorf("invalid removal: %w: %d", apperror.ErrInvalidPosition, position)
	}

	token, ok := that.board.TokenAt(position)
	if !ok {
		return fmt.Errorf("invalid removal: %w: %s", apperror.ErrPositionEmpty, position)
	}

	if token.Colour == that.ColourOnTurn() {
		return fmt.Errorf("invalid removal: %w: %s", apperror.ErrOwnToken, position)
	}

	if err := that.board.RemoveToken(position); err != nil {
		return fmt.Errorf("invalid removal: %w", err)
	}

	that.player(token.Colour).RemoveToken()
	that.millPending = false
	that.resolveTurn()

	return nil
}

// Apply dispatches an intent to the matching operation.
func (that *Manager) Apply(intent entity.Intent) (bool, error) {
	switch intent.Kind {
	case entity.IntentPlace:
		return that.PlaceToken(intent.To, intent.Colour)
	case entity.IntentMove:
		if err := that.confirmIntentTurn(intent.Colour); err != nil {
			return false, err
		}
		return that.MoveToken(intent.From, intent.To)
	case entity.IntentRemove:
		if err := that.confirmIntentTurn(intent.Colour); err != nil {
			return false, err
		}
		return false, that.RemoveToken(intent.To)
	default:
		return false, fmt.Errorf("%w: unknown intent %q", apperror.ErrWrongPhase, intent.Kind)
	}
}

// CheckWin reports the outcome: a winner once a side that finished placing
// is down to two tokens, a draw once the side on turn could not move.
func (that *Manager) CheckWin() entity.Outcome {
	if that.phase == entity.PhaseGameOver {
		return that.outcome
	}

	return that.evaluateWin()
}

// AnyMovePossible reports whether colour has at least one legal move. It is
// false for NoColour, which is on turn once the game is over.
func (that *Manager) AnyMovePossible(colour entity.Colour) bool {
	if _, ok := seat(colour); !ok {
		return false
	}

	if that.player(colour).CanFly() {
		return len(that.board.EmptyPositions()) > 0
	}

	for _, token := range that.board.Tokens(colour) {
		if len(that.board.LegalDestinations(token.Position)) > 0 {
			return true
		}
	}

	return false
}

// LegalDestinations returns where the token on position may go. Under the
// flying rule every empty cell qualifies.
func (that *Manager) LegalDestinations(position entity.Position) []entity.Position {
	token, ok := that.board.TokenAt(position)
	if ok && that.player(token.Colour).CanFly() {
		return that.board.EmptyPositions()
	}

	return that.board.LegalDestinations(position)
}

// CanRemove reports whether the side on turn may take the token on position now.
func (that *Manager) CanRemove(position entity.Position) bool {
	if !that.millPending || that.phase == entity.PhaseGameOver {
		return false
	}

	return that.board.CanBeRemoved(position, that.ColourOnTurn().Opponent())
}

func (that *Manager) CurrentPhase() entity.Phase {
	return that.phase
}

// ColourOnTurn returns NoColour once the game is over.
func (that *Manager) ColourOnTurn() entity.Colour {
	for _, p := range that.players {
		if p.IsTurn {
			return p.Colour
		}
	}

	return entity.NoColour
}

func (that *Manager) IsMillPending() bool {
	return that.millPending
}

// Player returns a copy of the counters of the side playing colour, the zero
// Player for NoColour.
func (that *Manager) Player(colour entity.Colour) entity.Player {
	if _, ok := seat(colour); !ok {
		return entity.Player{}
	}

	return *that.player(colour)
}

func (that *Manager) TokenAt(position entity.Position) (entity.Token, bool) {
	return that.board.TokenAt(position)
}

func (that *Manager) Tokens(colour entity.Colour) []entity.Token {
	return that.board.Tokens(colour)
}

func (that *Manager) EmptyPositions() []entity.Position {
	return that.board.EmptyPositions()
}

// Board returns a deep copy of the board; changes to it do not affect the game.
func (that *Manager) Board() *game.Board {
	return that.board.Copy()
}

func (that *Manager) validateMove(colour entity.Colour, from, to entity.Position) error {
	token, ok := that.board.TokenAt(from)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrPositionEmpty, from)
	}

	if token.Colour != colour {
		return fmt.Errorf("%w: token on %s belongs to %s", apperror.ErrNotYourTurn, from, token.Colour)
	}

	if that.board.IsOccupied(to) {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, to)
	}

	if !that.player(colour).CanFly() && !entity.IsAdjacent(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrNotAdjacent, from, to)
	}

	return nil
}

// afterAction runs mill detection on the cell just filled and either opens
// the removal sub-state or resolves the turn.
func (that *Manager) afterAction(position entity.Position) bool {
	mill := that.board.DetectMill(position)

	// nothing to take: the mill stands but the turn resolves
	if mill && that.opponent().PiecesOnBoard > 0 {
		that.millPending = true
		return true
	}

	that.resolveTurn()

	return mill
}

func (that *Manager) resolveTurn() {
	if outcome := that.evaluateWin(); outcome.IsDecided() {
		that.gameOver(outcome)
		return
	}

	that.changePlayerTurn()

	if that.phase == entity.PhaseMovement && !that.AnyMovePossible(that.ColourOnTurn()) {
		that.gameOver(entity.OutcomeDraw)
	}
}

func (that *Manager) evaluateWin() entity.Outcome {
	switch {
	case that.players[0].IsDefeated():
		return entity.OutcomePlayer2
	case that.players[1].IsDefeated():
		return entity.OutcomePlayer1
	default:
		return entity.OutcomeNone
	}
}

func (that *Manager) changePlayerTurn() {
	if that.players[0].IsTurn {
		that.players[0].DeactivateTurn()
		that.players[1].ActivateTurn()
		return
	}

	that.players[1].DeactivateTurn()
	that.players[0].ActivateTurn()
}

func (that *Manager) gameOver(outcome entity.Outcome) {
	that.phase = entity.PhaseGameOver
	that.outcome = outcome
	that.millPending = false
	that.players[0].DeactivateTurn()
	that.players[1].DeactivateTurn()
}

func (that *Manager) confirmPhase(want entity.Phase) error {
	switch {
	case that.phase == entity.PhaseGameOver:
		return apperror.ErrGameFinished
	case that.millPending:
		return fmt.Errorf("%w: a removal is pending", apperror.ErrWrongPhase)
	case that.phase != want:
		return fmt.Errorf("%w: %s", apperror.ErrWrongPhase, that.phase)
	default:
		return nil
	}
}

func (that *Manager) confirmTurn(colour entity.Colour) error {
	if onTurn := that.ColourOnTurn(); colour != onTurn {
		return fmt.Errorf("%w: %s is on turn", apperror.ErrNotYourTurn, onTurn)
	}

	return nil
}

// confirmIntentTurn leaves game-over reporting to the operation itself.
func (that *Manager) confirmIntentTurn(colour entity.Colour) error {
	if that.phase == entity.PhaseGameOver {
		return nil
	}

	return that.confirmTurn(colour)
}

func (that *Manager) player(colour entity.Colour) *entity.Player {
	i, ok := seat(colour)
	if !ok {
		panic(fmt.Errorf("unknown colour %q", colour))
	}

	return that.players[i]
}

func (that *Manager) opponent() *entity.Player {
	if that.players[0].IsTurn {
		return that.players[1]
	}

	return that.players[0]
}

func seat(colour entity.Colour) (int, bool) {
	switch colour {
	case entity.White:
		return 0, true
	case entity.Black:
		return 1, true
	default:
		return 0, false
	}
}
