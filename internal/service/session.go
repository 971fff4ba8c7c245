package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/morris-backend/internal/apperror"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/morris"
)

const (
	defaultMinThink = 500 * time.Millisecond
	defaultMaxThink = 1300 * time.Millisecond

	updatesBuffer = 64
)

var (
	ErrSessionClosed = errors.New("session is closed")
	ErrSeatAutomated = errors.New("seat is played by the computer")
)

// Result is the outcome of one command run by a session.
type Result struct {
	SessionID  string        `json:"session_id"`
	GameID     string        `json:"game_id"`
	Intent     entity.Intent `json:"intent"`
	MillFormed bool          `json:"mill_formed"`
	State      morris.State  `json:"state"`
}

type command struct {
	run   func() (Result, error)
	reply chan reply
}

type reply struct {
	result Result
	err    error
}

type SessionOption func(*Session)

// WithAutomatedSeat hands the side playing colour to the bot.
func WithAutomatedSeat(colour entity.Colour) SessionOption {
	return func(s *Session) {
		s.managerOpts = append(s.managerOpts, morris.WithAutomated(colour))
	}
}

// WithThinkTime sets the delay range before an automated intent is submitted.
func WithThinkTime(minThink, maxThink time.Duration) SessionOption {
	return func(s *Session) {
		if maxThink < minThink {
			maxThink = minThink
		}

		s.minThink, s.maxThink = minThink, maxThink
	}
}

// WithSeed seeds the think-time delays. Zero seeds from the clock.
func WithSeed(seed uint64) SessionOption {
	return func(s *Session) {
		s.rnd = newRand(seed)
	}
}

// Session serializes every access to one game. Run is the only goroutine
// that touches the manager; callers and automated seats go through its queue.
type Session struct {
	id     string
	logger *slog.Logger
	bot    BotService

	manager     *morris.Manager
	managerOpts []morris.Option
	gameID      string

	minThink time.Duration
	maxThink time.Duration
	rnd      *rand.Rand

	// generation invalidates timers scheduled for a previous game.
	generation uint64
	timer      *time.Timer

	commands chan command
	updates  chan Result
	done     chan struct{}
}

func NewSession(logger *slog.Logger, bot BotService, opts ...SessionOption) *Session {
	session := &Session{
		id:       uuid.NewString(),
		bot:      bot,
		gameID:   uuid.NewString(),
		minThink: defaultMinThink,
		maxThink: defaultMaxThink,
		commands: make(chan command),
		updates:  make(chan Result, updatesBuffer),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(session)
	}

	if session.rnd == nil {
		session.rnd = newRand(0)
	}

	session.manager = morris.NewGame(session.managerOpts...)
	session.logger = logger.With("component", "session", "session_id", session.id)

	return session
}

func (that *Session) ID() string {
	return that.id
}

// Updates delivers every applied intent and every new game. Slow readers
// miss updates rather than stall the game.
func (that *Session) Updates() <-chan Result {
	return that.updates
}

// Run processes commands until ctx is done.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer close(that.done)
	defer that.stopTimer()

	log.Info("session started", "game_id", that.gameID)
	that.scheduleAutomated()

	for {
		select {
		case <-ctx.Done():
			log.Info("session stopped")
			return nil
		case cmd := <-that.commands:
			result, err := cmd.run()
			if cmd.reply != nil {
				cmd.reply <- reply{result: result, err: err}
			}
		}
	}
}

// Submit applies intent on behalf of a human seat and waits for the result.
func (that *Session) Submit(ctx context.Context, intent entity.Intent) (Result, error) {
	return that.do(ctx, func() (Result, error) {
		if that.isAutomated(intent.Colour) {
			return that.result(intent, false), fmt.Errorf("%w: %s", ErrSeatAutomated, intent.Colour)
		}

		return that.apply(intent)
	})
}

// NewGame discards the current game and starts a new one.
func (that *Session) NewGame(ctx context.Context) (Result, error) {
	return that.do(ctx, func() (Result, error) {
		that.stopTimer()
		that.generation++
		that.gameID = uuid.NewString()
		that.manager.NewGame()

		that.logger.Info("new game", "game_id", that.gameID)

		result := that.result(entity.Intent{}, false)
		that.publish(result)
		that.scheduleAutomated()

		return result, nil
	})
}

func (that *Session) Snapshot(ctx context.Context) (Result, error) {
	return that.do(ctx, func() (Result, error) {
		return that.result(entity.Intent{}, false), nil
	})
}

func (that *Session) do(ctx context.Context, run func() (Result, error)) (Result, error) {
	replyCh := make(chan reply, 1)

	select {
	case that.commands <- command{run: run, reply: replyCh}:
	case <-that.done:
		return Result{}, ErrSessionClosed
	case <-ctx.Done():
		return Result{}, fmt.Errorf("failed to submit command: %w", ctx.Err())
	}

	select {
	case r := <-replyCh:
		return r.result, r.err
	case <-ctx.Done():
		return Result{}, fmt.Errorf("failed to wait for result: %w", ctx.Err())
	}
}

func (that *Session) apply(intent entity.Intent) (Result, error) {
	log := that.logger.With("method", "apply", "game_id", that.gameID)

	wasOver := that.manager.CurrentPhase() == entity.PhaseGameOver

	millFormed, err := that.manager.Apply(intent)
	if err != nil {
		log.Debug("intent rejected", "intent", intent.String(), "error", err)

		result := that.result(intent, false)
		// a move intent with no legal move left ends the game
		if !wasOver && result.State.IsOver() {
			that.publish(result)
		}

		return result, fmt.Errorf("failed to apply %s: %w", intent, err)
	}

	log.Debug("intent applied", "intent", intent.String(), "mill", millFormed)

	result := that.result(intent, millFormed)
	if result.State.IsOver() {
		log.Info("game over", "outcome", result.State.Outcome)
	}

	that.publish(result)
	that.scheduleAutomated()

	return result, nil
}

// playAutomated runs on the session goroutine when a think timer fires.
func (that *Session) playAutomated(generation uint64) (Result, error) {
	log := that.logger.With("method", "playAutomated", "game_id", that.gameID)

	if generation != that.generation {
		return Result{}, nil
	}

	colour := that.manager.ColourOnTurn()
	if !that.isAutomated(colour) {
		return Result{}, nil
	}

	intent, err := that.bot.ChooseIntent(that.manager)
	if err != nil {
		log.Error("bot failed to choose an intent", "colour", colour, "error", err)
		return Result{}, fmt.Errorf("bot failed to choose an intent: %w", err)
	}

	result, err := that.apply(intent)
	if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
		log.Error("bot intent rejected", "intent", intent.String(), "error", err)
	}

	return result, err
}

func (that *Session) scheduleAutomated() {
	colour := that.manager.ColourOnTurn()
	if !that.isAutomated(colour) {
		return
	}

	generation := that.generation
	delay := that.thinkTime()

	that.stopTimer()
	that.timer = time.AfterFunc(delay, func() {
		cmd := command{
			run: func() (Result, error) {
				return that.playAutomated(generation)
			},
		}

		select {
		case that.commands <- cmd:
		case <-that.done:
		}
	})
}

// isAutomated is false for NoColour.
func (that *Session) isAutomated(colour entity.Colour) bool {
	player := that.manager.Player(colour)
	return player.IsAutomated()
}

func (that *Session) thinkTime() time.Duration {
	spread := that.maxThink - that.minThink
	if spread <= 0 {
		return that.minThink
	}

	return that.minThink + time.Duration(that.rnd.Int63n(int64(spread)+1))
}

func (that *Session) stopTimer() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
}

func (that *Session) publish(result Result) {
	select {
	case that.updates <- result:
	default:
		that.logger.Warn("update dropped, reader is too slow", "game_id", result.GameID)
	}
}

func (that *Session) result(intent entity.Intent, millFormed bool) Result {
	return Result{
		SessionID:  that.id,
		GameID:     that.gameID,
		Intent:     intent,
		MillFormed: millFormed,
		State:      that.manager.State(),
	}
}
