package entity

type Phase string

const (
	PhasePlacement Phase = "placement"
	PhaseMovement  Phase = "movement"
	PhaseGameOver  Phase = "gameover"
)

type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
	OutcomeDraw    Outcome = "draw"
)

func (o Outcome) IsDecided() bool {
	return o != OutcomeNone
}

type IntentKind string

const (
	IntentPlace  IntentKind = "place"
	IntentMove   IntentKind = "move"
	IntentRemove IntentKind = "remove"
)

// Intent is a single request to change the game: a placement on To, a move
// From -> To or the removal of the token on To.
type Intent struct {
	Kind   IntentKind `json:"kind"`
	Colour Colour     `json:"colour"`
	From   Position   `json:"from"`
	To     Position   `json:"to"`
}

func PlaceIntent(colour Colour, to Position) Intent {
	return Intent{Kind: IntentPlace, Colour: colour, From: InvalidPosition, To: to}
}

func MoveIntent(colour Colour, from, to Position) Intent {
	return Intent{Kind: IntentMove, Colour: colour, From: from, To: to}
}

func RemoveIntent(colour Colour, target Position) Intent {
	return Intent{Kind: IntentRemove, Colour: colour, From: InvalidPosition, To: target}
}

func (that Intent) String() string {
	switch that.Kind {
	case IntentPlace:
		return string(that.Colour) + " place " + that.To.String()
	case IntentMove:
		return string(that.Colour) + " move " + that.From.String() + " " + that.To.String()
	case IntentRemove:
		return string(that.Colour) + " remove " + that.To.String()
	default:
		return string(that.Colour) + " " + string(that.Kind)
	}
}
