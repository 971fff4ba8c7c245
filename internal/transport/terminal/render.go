package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/morris"
	"github.com/rocketscienceinc/morris-backend/internal/service"
)

var boardTemplate = [...]string{
	"7 .-----------.-----------.",
	"  |           |           |",
	"6 |   .-------.-------.   |",
	"  |   |       |       |   |",
	"5 |   |   .---.---.   |   |",
	"  |   |   |       |   |   |",
	"4 .---.---.       .---.---.",
	"  |   |   |       |   |   |",
	"3 |   |   .---.---.   |   |",
	"  |   |       |       |   |",
	"2 |   .-------.-------.   |",
	"  |           |           |",
	"1 .-----------.-----------.",
	"  a   b   c   d   e   f   g",
}

const (
	boardMargin = 2
	fileWidth   = 4
	topRank     = 6
)

var marks = map[entity.Colour]byte{
	entity.White: 'W',
	entity.Black: 'B',
}

// Render draws the board followed by a status line.
func Render(state morris.State) string {
	rows := make([][]byte, len(boardTemplate))
	for i, line := range boardTemplate {
		rows[i] = []byte(line)
	}

	for _, token := range state.Tokens {
		file, rank := token.Position.Coordinates()
		rows[(topRank-rank)*2][boardMargin+file*fileWidth] = marks[token.Colour]
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	sb.WriteString(status(state))
	sb.WriteByte('\n')

	return sb.String()
}

func status(state morris.State) string {
	white, black := state.Player(entity.White), state.Player(entity.Black)

	counts := fmt.Sprintf("white %d in hand, %d on board | black %d in hand, %d on board",
		white.PiecesToPlace, white.PiecesOnBoard, black.PiecesToPlace, black.PiecesOnBoard)

	return counts + "\n" + nextStep(state)
}

// nextStep tells the side on turn what is expected of it.
func nextStep(state morris.State) string {
	switch {
	case state.IsOver():
		return outcomeText(state.Outcome)
	case state.Turn == entity.NoColour:
		return ""
	case state.MillPending:
		return fmt.Sprintf("%s formed a mill: remove a %s token", state.Turn, state.Turn.Opponent())
	case state.Phase == entity.PhasePlacement:
		return fmt.Sprintf("%s to place a token", state.Turn)
	}

	if mover := state.Player(state.Turn); mover.CanFly() {
		return fmt.Sprintf("%s to move, flying to any empty cell", state.Turn)
	}

	return fmt.Sprintf("%s to move a token", state.Turn)
}

func outcomeText(outcome entity.Outcome) string {
	switch outcome {
	case entity.OutcomePlayer1:
		return "game over: white wins"
	case entity.OutcomePlayer2:
		return "game over: black wins"
	case entity.OutcomeDraw:
		return "game over: draw, no legal move left"
	default:
		return "game over"
	}
}

func describe(update service.Result) string {
	line := update.Intent.String()
	if update.MillFormed {
		line += " (mill)"
	}

	return line
}
