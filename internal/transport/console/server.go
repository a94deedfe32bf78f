package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	"github.com/rocketscienceinc/minimax-games/internal/config"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

var ErrQuit = errors.New("quit requested")

type uGame interface {
	NewGame(ctx context.Context, kind entity.Kind, humanMark string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

// Defaults are used by "new" when the command leaves kind or mark out.
type Defaults struct {
	Kind      entity.Kind
	HumanMark string
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	conf     config.Console
	defaults Defaults

	out    io.Writer
	gameID string
	kind   entity.Kind

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, uGame uGame, conf config.Console, defaults Defaults, out io.Writer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		uGame:    uGame,
		conf:     conf,
		defaults: defaults,
		out:      out,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleMove
	server.handlers["restart"] = server.handleRestart
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Start - runs the read-eval loop until quit, EOF, interrupt or ctx cancellation.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          that.conf.Prompt,
		HistoryFile:     that.conf.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}

	closeReadline := sync.OnceFunc(func() {
		if err := rl.Close(); err != nil {
			log.Error("failed to close readline", "error", err)
		}
	})
	defer closeReadline()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			closeReadline()
		case <-done:
		}
	}()

	that.out = rl.Stdout()

	if err = that.handleNewGame(ctx, nil); err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read line: %w", err)
		}

		if err = that.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}

			log.Error("error processing command", "error", err)
		}
	}
}

// Execute - parses one input line and runs the matching command.
// A bare number is a shortcut for "move N".
func (that *Server) Execute(ctx context.Context, line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		that.printf("Can't parse %q: %v\n", line, err)
		return nil
	}

	if len(fields) == 0 {
		return nil
	}

	command := strings.ToLower(fields[0])
	if _, err = strconv.Atoi(command); err == nil {
		return that.handleMove(ctx, fields)
	}

	handler, ok := that.handlers[command]
	if !ok {
		that.printf("Unknown command %q, type help.\n", fields[0])
		return nil
	}

	return handler(ctx, fields[1:])
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
