package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/mines"
)

var (
	paramsSeed string
	seed       uint64
)

func init() {
	const usage = "board as rows:cols:mines (overrides MINES_ROWS, MINES_COLS, MINES_COUNT)"
	flag.StringVar(&paramsSeed, "params", "", usage)
	flag.StringVar(&paramsSeed, "p", "", usage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "random seed (overrides MINES_SEED)")
}

func newLogger() *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func newSession(game *config.Game) (*mines.Session, error) {
	params := game.Params()
	if paramsSeed != "" {
		p, err := mines.ParseSeed(paramsSeed)
		if err != nil {
			return nil, err
		}
		params = *p
	}

	var r *rand.Rand
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			game.Seed, game.Seeded = seed, true
		}
	})
	if game.Seeded {
		r = rand.New(rand.NewPCG(game.Seed, game.Seed))
	}

	return mines.NewSession(params, r)
}

func main() {
	flag.Parse()

	logger := newLogger()
	mines.Log = logger

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	game, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read config", slog.Any("error", err))
		os.Exit(1)
	}

	session, err := newSession(game)
	if err != nil {
		logger.Error("failed to start a game", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("game started", slog.String("params", session.Params().Seed()))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return play(gCtx, logger, readLines(os.Stdin), os.Stdout, session)
	})
	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stdout, "interrupted")
		}
		return nil
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		logger.Error("exit", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("game ended", slog.String("status", session.Status().String()))
}
