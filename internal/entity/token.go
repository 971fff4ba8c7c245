package entity

type Colour string

const (
	White    Colour = "white"
	Black    Colour = "black"
	NoColour Colour = ""
)

func (c Colour) Opponent() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Token is a placed piece. MillIDs holds the ids of the active mills the
// token completes, 0 marks a free slot.
type Token struct {
	Colour    Colour   `json:"colour"`
	Position  Position `json:"position"`
	MillCount int      `json:"mill_count"`
	MillIDs   [2]int   `json:"mill_ids"`
}

func NewToken(colour Colour, position Position) *Token {
	return &Token{
		Colour:   colour,
		Position: position,
	}
}

func (that *Token) IsMillProtected() bool {
	return that.MillCount > 0
}

func (that *Token) InMill(id int) bool {
	return id != 0 && (that.MillIDs[0] == id || that.MillIDs[1] == id)
}

// JoinMill records membership in mill id. A position lies on two lines at
// most, so a third membership is a bookkeeping error and is ignored.
func (that *Token) JoinMill(id int) {
	if that.InMill(id) {
		return
	}

	for i := range that.MillIDs {
		if that.MillIDs[i] == 0 {
			that.MillIDs[i] = id
			that.MillCount++
			return
		}
	}
}

func (that *Token) LeaveMill(id int) {
	for i := range that.MillIDs {
		if id != 0 && that.MillIDs[i] == id {
			that.MillIDs[i] = 0
			that.MillCount--
		}
	}
}

// Mills returns the active mill ids of the token.
func (that *Token) Mills() []int {
	ids := make([]int, 0, len(that.MillIDs))
	for _, id := range that.MillIDs {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
