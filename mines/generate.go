package mines

import "math/rand/v2"

// GenerateMines picks p.MineCount distinct cells uniformly at random.
// Invalid params are rejected before any sampling takes place.
func GenerateMines(p GameParams, r *rand.Rand) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.MineCount*2 > p.Cells() {
		return pickCandidates(p, r), nil
	}
	return sampleDistinct(p, r), nil
}

// Rejection sampling: draw a random cell, keep it unless already chosen.
func sampleDistinct(p GameParams, r *rand.Rand) []Point {
	seen := make(map[Point]struct{}, p.MineCount)
	placed := make([]Point, 0, p.MineCount)
	for len(placed) < p.MineCount {
		pt := Point{r.IntN(p.Rows), r.IntN(p.Cols)}
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}
		placed = append(placed, pt)
	}
	return placed
}

// Dense boards would spend most draws on duplicates, so write down every
// cell and pick n off the list instead.
func pickCandidates(p GameParams, r *rand.Rand) []Point {
	candidates := make([]int, p.Cells())
	for i := range candidates {
		candidates[i] = i
	}
	placed := make([]Point, 0, p.MineCount)
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		placed = append(placed, Point{candidates[i] / p.Cols, candidates[i] % p.Cols})
		k--
		candidates[i] = candidates[k]
	}
	return placed
}
