package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/mines"
)

func newTestSession(t *testing.T) *mines.Session {
	t.Helper()
	s, err := mines.NewSession(
		mines.GameParams{Rows: 8, Cols: 8, MineCount: 10},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	return s
}

func safeCell(s *mines.Session) (int, int) {
	b := s.Board()
	for r := range b.Rows {
		for c := range b.Cols {
			if !b.IsMine(r, c) {
				return r, c
			}
		}
	}
	panic("no safe cell")
}

func TestExecuteCommandErrors(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		command string
		message string
	}{
		{"x", "unknown command"},
		{"o 1", "invalid number of arguments"},
		{"u 1", "invalid number of arguments"},
		{"o a 1", "row must be an int"},
		{"f 1 b", "column must be an int"},
		{"o 8 0", "invalid square coordinates"},
		{"c -1 0", "invalid square coordinates"},
		{"r lots", "mine count must be an int"},
	}
	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			err := executeCommand(s, test.command)
			require.Error(t, err)
			assert.Equal(t, test.message, err.Error())
		})
	}
	assert.Equal(t, 1, s.HistoryLen())
}

func TestExecuteCommand(t *testing.T) {
	s := newTestSession(t)
	r, c := safeCell(s)

	require.NoError(t, executeCommand(s, "  "))
	require.NoError(t, executeCommand(s, "p"))

	require.NoError(t, executeCommand(s, "f 0 0"))
	assert.Equal(t, 1, s.Flags())
	require.NoError(t, executeCommand(s, "u"))
	assert.Equal(t, 0, s.Flags())

	require.NoError(t, executeCommand(s, fmt.Sprintf("o %d %d", r, c)))
	assert.Positive(t, s.TilesClicked())

	require.NoError(t, executeCommand(s, "r 15"))
	assert.Equal(t, 15, s.MineCount())
	assert.Equal(t, 0, s.TilesClicked())

	var ce mines.ConfigurationError
	assert.True(t, errors.As(executeCommand(s, "r 64"), &ce))
	assert.Equal(t, 15, s.MineCount())

	assert.ErrorIs(t, executeCommand(s, "q"), errQuit)
}

func TestPlay(t *testing.T) {
	s := newTestSession(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lines := make(chan string, 3)
	lines <- "f 0 0;f 0 1"
	lines <- "bogus"
	lines <- "q"

	var out bytes.Buffer
	err := play(context.Background(), logger, lines, &out, s)
	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, 2, s.Flags())
	assert.Contains(t, out.String(), "error: unknown command")
	assert.Contains(t, out.String(), "active: 0/54 cleared, 2/10 flagged")
}

func TestPlayEndOfInput(t *testing.T) {
	s := newTestSession(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lines := readLines(bytes.NewBufferString("f 2 2\n"))
	var out bytes.Buffer
	err := play(context.Background(), logger, lines, &out, s)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, s.Flags())
}

func TestPlayCancelled(t *testing.T) {
	s := newTestSession(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := play(ctx, logger, make(chan string), io.Discard, s)
	assert.ErrorIs(t, err, context.Canceled)
}
