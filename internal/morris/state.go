package morris

import "github.com/rocketscienceinc/morris-backend/internal/entity"

// State is a read-only copy of a game, safe to hand to renderers.
type State struct {
	Phase       entity.Phase         `json:"phase"`
	Turn        entity.Colour        `json:"turn"`
	MillPending bool                 `json:"mill_pending"`
	Outcome     entity.Outcome       `json:"outcome"`
	Players     [2]entity.Player     `json:"players"`
	Tokens      []entity.Token       `json:"tokens"`
	Mills       [][3]entity.Position `json:"mills,omitempty"`
}

func (that *Manager) State() State {
	return State{
		Phase:       that.phase,
		Turn:        that.ColourOnTurn(),
		MillPending: that.millPending,
		Outcome:     that.CheckWin(),
		Players:     [2]entity.Player{*that.players[0], *that.players[1]},
		Tokens:      that.board.Tokens(entity.NoColour),
		Mills:       that.board.ActiveMills(),
	}
}

// TokenAt returns the token on position, if any.
func (that State) TokenAt(position entity.Position) (entity.Token, bool) {
	for _, token := range that.Tokens {
		if token.Position == position {
			return token, true
		}
	}

	return entity.Token{}, false
}

func (that State) IsOver() bool {
	return that.Phase == entity.PhaseGameOver
}

// Player returns the counters of the side playing colour, the zero Player
// for NoColour.
func (that State) Player(colour entity.Colour) entity.Player {
	i, ok := seat(colour)
	if !ok {
		return entity.Player{}
	}

	return that.Players[i]
}
