package service

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/morris-backend/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// GameView is the read-only part of a game the bot chooses from.
type GameView interface {
	CurrentPhase() entity.Phase
	ColourOnTurn() entity.Colour
	IsMillPending() bool
	Tokens(colour entity.Colour) []entity.Token
	EmptyPositions() []entity.Position
	LegalDestinations(position entity.Position) []entity.Position
	CanRemove(position entity.Position) bool
}

type BotService interface {
	ChooseIntent(view GameView) (entity.Intent, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot that picks uniformly among the legal intents.
// A zero seed seeds from the clock.
func NewBotService(seed uint64) BotService {
	return &botService{
		rnd: newRand(seed),
	}
}

func (that *botService) ChooseIntent(view GameView) (entity.Intent, error) {
	intents := LegalIntents(view)
	if len(intents) == 0 {
		return entity.Intent{}, ErrNoAvailableMoves
	}

	return intents[that.rnd.Intn(len(intents))], nil
}

// LegalIntents lists every intent the side on turn may submit now: removals
// while a mill is pending, placements or moves otherwise.
func LegalIntents(view GameView) []entity.Intent {
	colour := view.ColourOnTurn()
	if colour == entity.NoColour {
		return nil
	}

	var intents []entity.Intent

	switch {
	case view.IsMillPending():
		for _, token := range view.Tokens(colour.Opponent()) {
			if view.CanRemove(token.Position) {
				intents = append(intents, entity.RemoveIntent(colour, token.Position))
			}
		}
	case view.CurrentPhase() == entity.PhasePlacement:
		for _, p := range view.EmptyPositions() {
			intents = append(intents, entity.PlaceIntent(colour, p))
		}
	case view.CurrentPhase() == entity.PhaseMovement:
		for _, token := range view.Tokens(colour) {
			for _, to := range view.LegalDestinations(token.Position) {
				intents = append(intents, entity.MoveIntent(colour, token.Position, to))
			}
		}
	}

	return intents
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	return rand.New(rand.NewSource(seed))
}
