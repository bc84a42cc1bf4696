package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"example.com/defuse/internal/config"
	"example.com/defuse/internal/console"
	"example.com/defuse/internal/game"
	"example.com/defuse/internal/tui"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	eng *game.Engine

	// exactly one of the two front ends is set
	con    *console.Console
	in     io.Reader
	screen tcell.Screen
	ui     *tui.UI
}

type Options struct {
	In     io.Reader    // line mode input; defaults to os.Stdin
	Out    io.Writer    // line mode output; defaults to os.Stdout
	Screen tcell.Screen // full-screen mode; created from the terminal when nil
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	gen := game.NewGenerator(nil)
	if cfg.Game.Seed != 0 {
		gen = game.NewSeededGenerator(cfg.Game.Seed)
		log.Info("using fixed game seed", "seed", cfg.Game.Seed)
	}

	eng := game.New(
		game.WithGenerator(gen),
		game.WithLogger(log),
		game.WithLanguage(game.MatchLanguage(cfg.Game.Lang)),
		game.WithSecretLogging(cfg.Game.RevealSecret),
	)

	a := &App{cfg: cfg, log: log, eng: eng}

	if useScreen(cfg.Game.UI, opts) {
		s := opts.Screen
		if s == nil {
			var err error
			s, err = tcell.NewScreen()
			if err != nil {
				return nil, fmt.Errorf("terminal screen: %w", err)
			}
		}
		a.screen = s
		a.ui = tui.New(s, eng, log)
		return a, nil
	}

	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	a.in = opts.In
	a.con = console.New(eng, opts.Out, log)
	return a, nil
}

// ScreenMode reports whether New would pick the full-screen front end for
// the process terminal.
func ScreenMode(cfg config.Config) bool {
	return useScreen(cfg.Game.UI, Options{})
}

func useScreen(mode string, opts Options) bool {
	switch mode {
	case config.UIScreen:
		return true
	case config.UILine:
		return false
	}
	if opts.Screen != nil {
		return true
	}
	return opts.In == nil && term.IsTerminal(int(os.Stdin.Fd()))
}

// Run plays until the player quits, input ends, or ctx is cancelled.
// Only the play goroutine touches the engine.
func (a *App) Run(ctx context.Context) error {
	if a.ui != nil {
		return a.runScreen(ctx)
	}
	return a.runLines(ctx)
}

func (a *App) runLines(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)

	// A blocked terminal read cannot be interrupted, so the reader is not
	// waited for; it exits on its own once the process does.
	go a.readLines(ctx, lines)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return a.play(gctx, lines)
	})
	return g.Wait()
}

func (a *App) runScreen(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer a.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		defer a.logClosing()
		return a.ui.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.ui.Interrupt()
		return nil
	})
	return g.Wait()
}

func (a *App) play(ctx context.Context, lines <-chan string) error {
	defer a.logClosing()

	a.con.Greet()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if a.con.Handle(line) {
				return nil
			}
		}
	}
}

// logClosing must run on the goroutine that owns the engine.
func (a *App) logClosing() {
	a.log.Info("session closing", "game_id", a.eng.ID())
}

func (a *App) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)

	sc := bufio.NewScanner(a.in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := sc.Err(); err != nil {
		a.log.Error("read input", "err", fmt.Errorf("scan: %w", err))
	}
}
