package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/morris-backend/internal/config"
	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/service"
	"github.com/rocketscienceinc/morris-backend/internal/transport/terminal"
	"github.com/rocketscienceinc/morris-backend/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	bot := service.NewBotService(conf.Bot.Seed)
	session := service.NewSession(logger, bot, sessionOptions(conf)...)
	gameUseCase := usecase.NewGameUseCase(logger, session)
	server := terminal.New(logger, gameUseCase, os.Stdin, os.Stdout)

	// run game session
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session", "mode", conf.Mode, "session_id", session.ID())
		if err := session.Run(ctx); err != nil {
			sessionErrCh <- err
		}
	}()

	go forwardUpdates(ctx, cancel, log, conf, session, server)

	// run terminal
	terminalDoneCh := make(chan error, 1)
	go func() {
		terminalDoneCh <- server.Start(ctx)
	}()

	select {
	case err := <-sessionErrCh:
		return fmt.Errorf("game session error: %w", err)
	case err := <-terminalDoneCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
		log.Info("Terminal closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func sessionOptions(conf *config.Config) []service.SessionOption {
	opts := []service.SessionOption{
		service.WithThinkTime(conf.Bot.MinThink, conf.Bot.MaxThink),
		service.WithSeed(conf.Bot.Seed),
	}

	switch conf.Mode {
	case config.ModeComputer:
		opts = append(opts, service.WithAutomatedSeat(entity.Black))
	case config.ModeWatch:
		opts = append(opts,
			service.WithAutomatedSeat(entity.White),
			service.WithAutomatedSeat(entity.Black),
		)
	}

	return opts
}

// forwardUpdates prints the intents played by the computer. In watch mode the
// application stops after the game ends or runs past max-turns.
func forwardUpdates(
	ctx context.Context,
	cancel context.CancelFunc,
	log *slog.Logger,
	conf *config.Config,
	session *service.Session,
	server *terminal.Server,
) {
	turns := 0

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-session.Updates():
			if update.Intent.Kind == "" {
				turns = 0
				continue
			}

			turns++

			if conf.Mode == config.ModeHuman || (conf.Mode == config.ModeComputer && update.Intent.Colour == entity.White) {
				continue
			}

			server.ShowUpdate(update)

			if conf.Mode != config.ModeWatch {
				continue
			}

			if update.State.IsOver() || turns >= conf.MaxTurns {
				log.Info("Watched game ended", "game_id", update.GameID, "turns", turns, "outcome", update.State.Outcome)
				cancel()
				return
			}
		}
	}
}
