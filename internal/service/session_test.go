package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/testing/suite"
)

const (
	waitFor = 5 * time.Second
	tick    = 10 * time.Millisecond
)

func runSession(ctx context.Context, t *testing.T, session *Session) {
	t.Helper()

	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		_ = session.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-stopped
	})
}

func TestSession_Submit(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Applies a human intent", func(t *testing.T) {
		// Given: a running session with two human seats
		session := NewSession(s.Logger, NewBotService(1))
		runSession(ctx, t, session)

		// When: white places a token
		result, err := session.Submit(ctx, entity.PlaceIntent(entity.White, entity.D2))

		// Then: the result carries the new state
		require.NoError(t, err)
		assert.Equal(t, session.ID(), result.SessionID)
		assert.NotEmpty(t, result.GameID)
		assert.Equal(t, entity.Black, result.State.Turn)
		token, ok := result.State.TokenAt(entity.D2)
		require.True(t, ok)
		assert.Equal(t, entity.White, token.Colour)

		update := <-session.Updates()
		assert.Equal(t, result, update)
	})

	t.Run("Rejected intents report the unchanged state", func(t *testing.T) {
		session := NewSession(s.Logger, NewBotService(1))
		runSession(ctx, t, session)

		result, err := session.Submit(ctx, entity.PlaceIntent(entity.Black, entity.D2))

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, result.State.Tokens)
		assert.Empty(t, session.Updates())
	})

	t.Run("Automated seats do not take human intents", func(t *testing.T) {
		session := NewSession(s.Logger, NewBotService(1), WithAutomatedSeat(entity.Black))
		runSession(ctx, t, session)

		result, err := session.Submit(ctx, entity.PlaceIntent(entity.Black, entity.D2))

		require.ErrorIs(t, err, ErrSeatAutomated)
		assert.Equal(t, entity.AutomatedPlayer, result.State.Player(entity.Black).Kind)
		assert.Equal(t, entity.HumanPlayer, result.State.Player(entity.White).Kind)
	})

	t.Run("Error when the session is stopped", func(t *testing.T) {
		// Given: a session that ran and stopped
		session := NewSession(s.Logger, NewBotService(1))
		runCtx, cancel := context.WithCancel(ctx)
		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			_ = session.Run(runCtx)
		}()
		cancel()
		<-stopped

		// When: submitting
		_, err := session.Submit(ctx, entity.PlaceIntent(entity.White, entity.D2))

		// Then: the session refuses
		require.ErrorIs(t, err, ErrSessionClosed)
	})

	t.Run("Error when the caller gives up", func(t *testing.T) {
		session := NewSession(s.Logger, NewBotService(1))
		callCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := session.Submit(callCtx, entity.PlaceIntent(entity.White, entity.D2))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSession_Automated(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Computer answers a human placement", func(t *testing.T) {
		// Given: black is played by the computer without thinking time
		session := NewSession(s.Logger, NewBotService(3),
			WithAutomatedSeat(entity.Black),
			WithThinkTime(0, 0),
		)
		runSession(ctx, t, session)

		// When: white places
		_, err := session.Submit(ctx, entity.PlaceIntent(entity.White, entity.A7))
		require.NoError(t, err)

		// Then: black places too and the turn comes back
		require.Eventually(t, func() bool {
			result, err := session.Snapshot(ctx)
			return err == nil && len(result.State.Tokens) == 2 && result.State.Turn == entity.White
		}, waitFor, tick)

		result, err := session.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, result.State.Player(entity.Black).PiecesToPlace)
	})

	t.Run("Computer plays both seats", func(t *testing.T) {
		// Given: both seats automated
		session := NewSession(s.Logger, NewBotService(5),
			WithAutomatedSeat(entity.White),
			WithAutomatedSeat(entity.Black),
			WithThinkTime(0, time.Millisecond),
			WithSeed(5),
		)
		runSession(ctx, t, session)

		// When: watching the first updates
		colours := make([]entity.Colour, 0, 20)
		for len(colours) < 20 {
			select {
			case update := <-session.Updates():
				colours = append(colours, update.Intent.Colour)
				if update.State.IsOver() {
					return
				}
			case <-time.After(waitFor):
				t.Fatal("no update from the computer")
			}
		}

		// Then: white opened the game and both sides played
		assert.Equal(t, entity.White, colours[0])
		assert.Contains(t, colours, entity.Black)
	})

	t.Run("New game drops the pending computer move", func(t *testing.T) {
		// Given: white is automated and thinks for a long time
		session := NewSession(s.Logger, NewBotService(3),
			WithAutomatedSeat(entity.White),
			WithThinkTime(time.Hour, time.Hour),
		)
		runSession(ctx, t, session)

		first, err := session.Snapshot(ctx)
		require.NoError(t, err)

		// When: a new game starts
		result, err := session.NewGame(ctx)

		// Then: a fresh game with a new id and nothing placed
		require.NoError(t, err)
		assert.NotEqual(t, first.GameID, result.GameID)
		assert.Equal(t, first.SessionID, result.SessionID)
		assert.Empty(t, result.State.Tokens)
		assert.Equal(t, entity.White, result.State.Turn)
	})
}

func TestSession_NewGame(t *testing.T) {
	ctx, s := suite.New(t)

	// Given: a session with a placed token
	session := NewSession(s.Logger, NewBotService(1))
	runSession(ctx, t, session)
	_, err := session.Submit(ctx, entity.PlaceIntent(entity.White, entity.G1))
	require.NoError(t, err)
	<-session.Updates()

	// When: starting over
	result, err := session.NewGame(ctx)

	// Then: the board is empty and the reset is published
	require.NoError(t, err)
	assert.Empty(t, result.State.Tokens)
	assert.Equal(t, entity.PhasePlacement, result.State.Phase)
	assert.Equal(t, result, <-session.Updates())
}
