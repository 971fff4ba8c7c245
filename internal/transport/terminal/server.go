package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/morris-backend/internal/service"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(ctx context.Context) (service.Result, error)
	State(ctx context.Context) (service.Result, error)

	Place(ctx context.Context, position string) (service.Result, error)
	Move(ctx context.Context, from, to string) (service.Result, error)
	Remove(ctx context.Context, position string) (service.Result, error)
}

type handler struct {
	args  int
	usage string
	run   func(ctx context.Context, args []string) error
}

// Server reads commands line by line and prints the board after every change.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer
	mu  sync.Mutex

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,
		in:     in,
		out:    out,
	}

	server.handlers = map[string]handler{
		"place":  {args: 1, usage: "place <cell>", run: server.handlePlace},
		"move":   {args: 2, usage: "move <from> <to>", run: server.handleMove},
		"remove": {args: 1, usage: "remove <cell>", run: server.handleRemove},
		"new":    {usage: "new", run: server.handleNewGame},
		"show":   {usage: "show", run: server.handleShow},
		"help":   {usage: "help", run: server.handleHelp},
		"quit":   {usage: "quit", run: server.handleQuit},
	}

	return server
}

// Start prints the board and processes commands until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if err := that.handleShow(ctx, nil); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Info("input closed")
			return nil
		case line := <-lines:
			err := that.handleLine(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				log.Error("error processing command", "command", line, "error", err)
			}
		}
	}
}

// ShowUpdate prints a state published by the game session.
func (that *Server) ShowUpdate(update service.Result) {
	if update.Intent.Kind != "" {
		that.printf("%s\n", describe(update))
	}

	that.render(update)
}

func (that *Server) handleLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	action := strings.ToLower(fields[0])

	h, ok := that.handlers[action]
	if !ok {
		that.printf("unknown command %q, type help\n", action)
		return nil
	}

	args := fields[1:]
	if len(args) != h.args {
		that.printf("usage: %s\n", h.usage)
		return nil
	}

	return h.run(ctx, args)
}

func (that *Server) prompt() {
	that.printf("> ")
}

func (that *Server) printf(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Server) render(result service.Result) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = io.WriteString(that.out, Render(result.State))
}
