package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/service"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (service.Result, error)
	State(ctx context.Context) (service.Result, error)

	Place(ctx context.Context, position string) (service.Result, error)
	Move(ctx context.Context, from, to string) (service.Result, error)
	Remove(ctx context.Context, position string) (service.Result, error)
}

type sessionDep interface {
	Submit(ctx context.Context, intent entity.Intent) (service.Result, error)
	NewGame(ctx context.Context) (service.Result, error)
	Snapshot(ctx context.Context) (service.Result, error)
}

type gameUseCase struct {
	logger  *slog.Logger
	session sessionDep
}

// NewGameUseCase returns the facade used by transports. Intents are issued for
// the side on turn; cells are given in algebraic notation.
func NewGameUseCase(logger *slog.Logger, session sessionDep) GameUseCase {
	return &gameUseCase{
		logger:  logger.With("component", "gameUseCase"),
		session: session,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context) (service.Result, error) {
	result, err := that.session.NewGame(ctx)
	if err != nil {
		return result, fmt.Errorf("could not start a new game: %w", err)
	}

	return result, nil
}

func (that *gameUseCase) State(ctx context.Context) (service.Result, error) {
	result, err := that.session.Snapshot(ctx)
	if err != nil {
		return result, fmt.Errorf("could not get game state: %w", err)
	}

	return result, nil
}

func (that *gameUseCase) Place(ctx context.Context, position string) (service.Result, error) {
	to, err := entity.ParsePosition(position)
	if err != nil {
		return service.Result{}, fmt.Errorf("could not place: %w", err)
	}

	return that.submit(ctx, func(colour entity.Colour) entity.Intent {
		return entity.PlaceIntent(colour, to)
	})
}

func (that *gameUseCase) Move(ctx context.Context, from, to string) (service.Result, error) {
	src, err := entity.ParsePosition(from)
	if err != nil {
		return service.Result{}, fmt.Errorf("could not move: %w", err)
	}

	dst, err := entity.ParsePosition(to)
	if err != nil {
		return service.Result{}, fmt.Errorf("could not move: %w", err)
	}

	return that.submit(ctx, func(colour entity.Colour) entity.Intent {
		return entity.MoveIntent(colour, src, dst)
	})
}

func (that *gameUseCase) Remove(ctx context.Context, position string) (service.Result, error) {
	target, err := entity.ParsePosition(position)
	if err != nil {
		return service.Result{}, fmt.Errorf("could not remove: %w", err)
	}

	return that.submit(ctx, func(colour entity.Colour) entity.Intent {
		return entity.RemoveIntent(colour, target)
	})
}

func (that *gameUseCase) submit(ctx context.Context, build func(colour entity.Colour) entity.Intent) (service.Result, error) {
	log := that.logger.With("method", "submit")

	current, err := that.session.Snapshot(ctx)
	if err != nil {
		return current, fmt.Errorf("could not get game state: %w", err)
	}

	intent := build(current.State.Turn)

	result, err := that.session.Submit(ctx, intent)
	if err != nil {
		log.Debug("intent rejected", "intent", intent.String(), "error", err)
		return result, fmt.Errorf("could not play %s: %w", intent, err)
	}

	return result, nil
}
