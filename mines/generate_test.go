package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"8x8(10)", GameParams{8, 8, 10}},
		{"8x8(0)", GameParams{8, 8, 0}},
		{"9x9(35)", GameParams{9, 9, 35}},
		{"16x16(99)", GameParams{16, 16, 99}},
		{"16x30(170)", GameParams{16, 30, 170}},
		{"3x3(8)", GameParams{3, 3, 8}},
		{"1x2(1)", GameParams{1, 2, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRand()
			for range 50 {
				pts, err := GenerateMines(test.params, r)
				require.NoError(t, err)
				require.Len(t, pts, test.params.MineCount)

				seen := make(map[Point]bool, len(pts))
				for _, pt := range pts {
					require.True(t, test.params.ValidatePosition(pt.Row, pt.Col), "%v", pt)
					require.False(t, seen[pt], "duplicate %v", pt)
					seen[pt] = true
				}
			}
		})
	}
}

func TestGenerateMinesDeterministic(t *testing.T) {
	p := GameParams{8, 8, 10}
	a, err := GenerateMines(p, newTestRand())
	require.NoError(t, err)
	b, err := GenerateMines(p, newTestRand())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateMinesRejectsInvalid(t *testing.T) {
	for _, p := range []GameParams{{8, 8, 64}, {8, 8, 100}, {8, 8, -1}, {0, 0, 0}} {
		_, err := GenerateMines(p, newTestRand())
		var ce ConfigurationError
		assert.True(t, errors.As(err, &ce), "%v: %v", p, err)
	}
}
