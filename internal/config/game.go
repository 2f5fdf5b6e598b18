package config

import (
	"fmt"
	"os"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/mines"
)

type Game struct {
	Rows      int    `schema:"rows"`
	Cols      int    `schema:"cols"`
	MineCount int    `schema:"mine_count"`
	Seed      uint64 `schema:"seed"`
	// Seeded is set when MINES_SEED was given
	Seeded bool `schema:"-"`
}

var gameEnv = map[string]string{
	"rows":       "MINES_ROWS",
	"cols":       "MINES_COLS",
	"mine_count": "MINES_COUNT",
	"seed":       "MINES_SEED",
}

func DefaultGame() *Game {
	return &Game{Rows: 8, Cols: 8, MineCount: 10}
}

func ParseGame(src map[string][]string) (*Game, error) {
	game := DefaultGame()
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(game, src); err != nil {
		return nil, err
	}
	_, game.Seeded = src["seed"]
	if err := game.Params().Validate(); err != nil {
		return nil, err
	}
	return game, nil
}

func NewGame() (*Game, error) {
	src := make(map[string][]string)
	for key, env := range gameEnv {
		if v, ok := os.LookupEnv(env); ok {
			src[key] = []string{v}
		}
	}
	game, err := ParseGame(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read game config: %w", err)
	}
	return game, nil
}

func (g Game) Params() mines.GameParams {
	return mines.GameParams{Rows: g.Rows, Cols: g.Cols, MineCount: g.MineCount}
}
