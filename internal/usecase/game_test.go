package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/morris"
	"github.com/rocketscienceinc/morris-backend/internal/service"
	mockedUseCase "github.com/rocketscienceinc/morris-backend/mocks/usecase"
	"github.com/rocketscienceinc/morris-backend/testing/suite"
)

var errSessionDown = errors.New("session down")

func turnOf(colour entity.Colour) service.Result {
	return service.Result{GameID: "game123", State: morris.State{Phase: entity.PhasePlacement, Turn: colour}}
}

func TestGameUseCase_Place(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Places for the side on turn", func(t *testing.T) {
		// Given: black is on turn
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().
			Snapshot(mock.Anything).
			Return(turnOf(entity.Black), nil).
			Once()
		mockSession.EXPECT().
			Submit(mock.Anything, entity.PlaceIntent(entity.Black, entity.D2)).
			Return(turnOf(entity.White), nil).
			Once()

		// When: placing on d2
		result, err := useCaseInstance.Place(ctx, "d2")

		// Then: the session receives a black placement
		require.NoError(t, err)
		assert.Equal(t, entity.White, result.State.Turn)
	})

	t.Run("Returns error on a bad cell without touching the session", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		_, err := useCaseInstance.Place(ctx, "h9")

		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
		mockSession.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Returns the rejection of the session", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().
			Snapshot(mock.Anything).
			Return(turnOf(entity.White), nil).
			Once()
		mockSession.EXPECT().
			Submit(mock.Anything, entity.PlaceIntent(entity.White, entity.A1)).
			Return(turnOf(entity.White), apperror.ErrPositionOccupied).
			Once()

		result, err := useCaseInstance.Place(ctx, "a1")

		require.ErrorIs(t, err, apperror.ErrPositionOccupied)
		assert.Equal(t, "game123", result.GameID)
	})

	t.Run("Returns error if the snapshot fails", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().
			Snapshot(mock.Anything).
			Return(service.Result{}, errSessionDown).
			Once()

		_, err := useCaseInstance.Place(ctx, "a1")

		require.ErrorIs(t, err, errSessionDown)
	})
}

func TestGameUseCase_Move(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Moves for the side on turn", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().
			Snapshot(mock.Anything).
			Return(turnOf(entity.White), nil).
			Once()
		mockSession.EXPECT().
			Submit(mock.Anything, entity.MoveIntent(entity.White, entity.A7, entity.A4)).
			Return(turnOf(entity.Black), nil).
			Once()

		_, err := useCaseInstance.Move(ctx, "a7", "A4")

		require.NoError(t, err)
	})

	t.Run("Returns error on a bad destination", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		_, err := useCaseInstance.Move(ctx, "a7", "d4")

		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
	})
}

func TestGameUseCase_Remove(t *testing.T) {
	ctx, s := suite.New(t)

	// Given: white closed a mill
	mockSession := mockedUseCase.NewMocksessionDep(t)
	useCaseInstance := NewGameUseCase(s.Logger, mockSession)

	mockSession.EXPECT().
		Snapshot(mock.Anything).
		Return(turnOf(entity.White), nil).
		Once()
	mockSession.EXPECT().
		Submit(mock.Anything, entity.RemoveIntent(entity.White, entity.C5)).
		Return(turnOf(entity.Black), nil).
		Once()

	// When: removing c5
	result, err := useCaseInstance.Remove(ctx, "c5")

	// Then: black is on turn
	require.NoError(t, err)
	assert.Equal(t, entity.Black, result.State.Turn)
}

func TestGameUseCase_NewGameAndState(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("New game", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().NewGame(mock.Anything).Return(turnOf(entity.White), nil).Once()

		result, err := useCaseInstance.NewGame(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.White, result.State.Turn)
	})

	t.Run("State wraps session errors", func(t *testing.T) {
		mockSession := mockedUseCase.NewMocksessionDep(t)
		useCaseInstance := NewGameUseCase(s.Logger, mockSession)

		mockSession.EXPECT().Snapshot(mock.Anything).Return(service.Result{}, service.ErrSessionClosed).Once()

		_, err := useCaseInstance.State(ctx)

		require.ErrorIs(t, err, service.ErrSessionClosed)
	})
}

func TestGameUseCase_WithSession(t *testing.T) {
	ctx, s := suite.New(t)

	// Given: a real session with two human seats
	session := service.NewSession(s.Logger, service.NewBotService(1))
	runCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	go func() { _ = session.Run(runCtx) }()

	useCaseInstance := NewGameUseCase(s.Logger, session)

	// When: playing the opening in which white closes a mill
	for _, cell := range []string{"a7", "c5", "d7", "d5", "g7"} {
		_, err := useCaseInstance.Place(ctx, cell)
		require.NoError(t, err, cell)
	}

	// Then: white must remove before black plays
	_, err := useCaseInstance.Place(ctx, "a1")
	require.ErrorIs(t, err, apperror.ErrWrongPhase)

	result, err := useCaseInstance.Remove(ctx, "c5")
	require.NoError(t, err)
	assert.Equal(t, entity.Black, result.State.Turn)
	assert.Len(t, result.State.Tokens, 4)
}
