package terminal

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/service"
)

func (that *Server) handlePlace(ctx context.Context, args []string) error {
	return that.play("handlePlace", func() (service.Result, error) {
		return that.uGame.Place(ctx, args[0])
	})
}

func (that *Server) handleMove(ctx context.Context, args []string) error {
	return that.play("handleMove", func() (service.Result, error) {
		return that.uGame.Move(ctx, args[0], args[1])
	})
}

func (that *Server) handleRemove(ctx context.Context, args []string) error {
	return that.play("handleRemove", func() (service.Result, error) {
		return that.uGame.Remove(ctx, args[0])
	})
}

func (that *Server) handleNewGame(ctx context.Context, _ []string) error {
	result, err := that.uGame.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start a new game: %w", err)
	}

	that.printf("new game %s\n", result.GameID)
	that.render(result)

	return nil
}

func (that *Server) handleShow(ctx context.Context, _ []string) error {
	result, err := that.uGame.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to get game state: %w", err)
	}

	that.render(result)

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	actions := make([]string, 0, len(that.handlers))
	for action := range that.handlers {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	that.printf("commands:\n")
	for _, action := range actions {
		that.printf("  %s\n", that.handlers[action].usage)
	}
	that.printf("cells are named a1..g7, e.g. place d2\n")

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("bye\n")
	return errQuit
}

// play runs one game intent. Rule violations are shown to the user; any
// other failure is returned.
func (that *Server) play(method string, run func() (service.Result, error)) error {
	log := that.logger.With("method", method)

	result, err := run()
	if err != nil {
		if errors.Is(err, apperror.ErrWrongPhase) {
			that.printf("%s\n", nextStep(result.State))
			return nil
		}

		if message, ok := userMessage(err); ok {
			that.printf("%s\n", message)
			if errors.Is(err, apperror.ErrGameFinished) && result.State.IsOver() {
				that.render(result)
			}
			return nil
		}

		log.Error("failed to play", "error", err)
		return err
	}

	that.render(result)

	return nil
}

var userMessages = []struct {
	err     error
	message string
}{
	{apperror.ErrInvalidPosition, "no such cell, use a1..g7"},
	{apperror.ErrPositionOccupied, "that cell is taken"},
	{apperror.ErrPositionEmpty, "there is no token on that cell"},
	{apperror.ErrNotAdjacent, "tokens move along a line to a neighbouring cell"},
	{apperror.ErrNotYourTurn, "that is not your token"},
	{apperror.ErrTokenProtectedByMill, "that token is protected by a mill"},
	{apperror.ErrOwnToken, "remove one of your opponent's tokens"},
	{apperror.ErrGameFinished, "the game is over, type new to play again"},
	{service.ErrSeatAutomated, "wait, the computer is thinking"},
}

func userMessage(err error) (string, bool) {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}

	return "", false
}
