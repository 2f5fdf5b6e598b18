package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Rows * p.Cols
}

// Seed encodes the params as "rows:cols:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// Validate reports a [ConfigurationError] unless the board has at least one
// cell and 0 <= MineCount < Rows*Cols.
func (p GameParams) Validate() error {
	if p.Rows <= 0 {
		return ConfigurationError{"rows", p.Rows, "must be positive"}
	}
	if p.Cols <= 0 {
		return ConfigurationError{"cols", p.Cols, "must be positive"}
	}
	return p.validateMineCount(p.MineCount)
}

func (p GameParams) validateMineCount(mc int) error {
	if mc < 0 {
		return ConfigurationError{"mine count", mc, "must not be negative"}
	}
	if mc >= p.Cells() {
		return ConfigurationError{
			"mine count", mc, fmt.Sprintf("must be less than %d", p.Cells()),
		}
	}
	return nil
}

func (p GameParams) ValidatePosition(r, c int) bool {
	return 0 <= r && r < p.Rows && 0 <= c && c < p.Cols
}
