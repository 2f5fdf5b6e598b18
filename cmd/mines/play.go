package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vancomm/minesweeper/mines"
)

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func printSession(w io.Writer, s *mines.Session) {
	p := s.Params()
	fmt.Fprint(w, s.Render().String())
	fmt.Fprintf(w, "%s: %d/%d cleared, %d/%d flagged\n",
		s.Status(), s.TilesClicked(), p.Cells()-p.MineCount, s.Flags(), p.MineCount,
	)
}

// play runs commands until the input ends, the player quits or ctx is done.
// Several commands may share a line separated by ";".
func play(ctx context.Context, logger *slog.Logger, lines <-chan string, w io.Writer, s *mines.Session) error {
	printSession(w, s)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return io.EOF
			}
			for _, c := range byPiece(line, ";") {
				err := executeCommand(s, c)
				if errors.Is(err, errQuit) {
					return err
				}
				if err != nil {
					logger.Debug("command rejected", slog.String("command", c), slog.Any("error", err))
					fmt.Fprintf(w, "error: %s\n", err)
				}
			}
			printSession(w, s)
		}
	}
}
