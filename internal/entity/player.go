package entity

// PiecesPerPlayer is the number of tokens each side places during the placement phase.
const PiecesPerPlayer = 9

// FlyingThreshold is the number of tokens on board at which a side may move to any empty cell.
const FlyingThreshold = 3

type PlayerKind string

const (
	HumanPlayer     PlayerKind = "human"
	AutomatedPlayer PlayerKind = "automated"
)

type Player struct {
	Colour        Colour     `json:"colour"`
	Kind          PlayerKind `json:"kind"`
	PiecesToPlace int        `json:"pieces_to_place"`
	PiecesOnBoard int        `json:"pieces_on_board"`
	IsTurn        bool       `json:"is_turn"`
}

func NewPlayer(colour Colour, kind PlayerKind) *Player {
	return &Player{
		Colour:        colour,
		Kind:          kind,
		PiecesToPlace: PiecesPerPlayer,
	}
}

func (that *Player) TilePlaced() {
	if that.PiecesToPlace == 0 {
		return
	}

	that.PiecesToPlace--
	that.PiecesOnBoard++
}

func (that *Player) RemoveToken() {
	if that.PiecesOnBoard == 0 {
		return
	}

	that.PiecesOnBoard--
}

func (that *Player) ActivateTurn() {
	that.IsTurn = true
}

func (that *Player) DeactivateTurn() {
	that.IsTurn = false
}

// CanFly reports whether the flying rule applies to the player.
func (that *Player) CanFly() bool {
	return that.PiecesToPlace == 0 && that.PiecesOnBoard == FlyingThreshold
}

// IsDefeated reports whether the player finished placing and has fewer than three tokens left.
func (that *Player) IsDefeated() bool {
	return that.PiecesToPlace == 0 && that.PiecesOnBoard < FlyingThreshold
}

func (that *Player) IsAutomated() bool {
	return that.Kind == AutomatedPlayer
}
