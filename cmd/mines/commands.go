package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"u": 0,
	"r": 1,
	"p": 0,
	"q": 0,
}

func parseRowCol(twoStrings []string) (r int, c int, err error) {
	if r, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if c, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// executeCommand applies one command to s. Out of bounds cells are rejected
// here so the player gets feedback; the session itself ignores them.
func executeCommand(s *mines.Session, c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o", "f", "c":
		r, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		if !s.Params().ValidatePosition(r, col) {
			return errors.New("invalid square coordinates")
		}
		switch parts[0] {
		case "o":
			s.Open(r, col)
		case "f":
			s.Flag(r, col)
		case "c":
			s.Chord(r, col)
		}
		return nil
	case "u":
		s.Undo()
		return nil
	case "r":
		mc, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.New("mine count must be an int")
		}
		return s.Restart(mc)
	case "p":
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}
