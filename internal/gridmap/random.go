package gridmap

import (
	"math/rand"

	"github.com/pdrpinto/gridastar"
)

// RandomConfig shapes the clustered walls of a random map.
type RandomConfig struct {
	Clusters int     `json:"clusters"`
	Steps    int     `json:"steps"`
	Density  float64 `json:"density"`
}

// DefaultRandomConfig returns the settings used when none are given.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{Clusters: 8, Steps: 200, Density: 0.25}
}

// Random generates a rows×columns map with distinct start and target and
// walls grown by random walks. Endpoints are never walls.
func Random(rng *rand.Rand, rows, columns int, cfg RandomConfig) *Map {
	m := &Map{Rows: rows, Columns: columns}
	if rows*columns < 2 {
		return m
	}

	for {
		m.Start = gridastar.Coord{X: rng.Intn(rows), Y: rng.Intn(columns)}
		m.Target = gridastar.Coord{X: rng.Intn(rows), Y: rng.Intn(columns)}
		if m.Start != m.Target {
			break
		}
	}
	m.HasStart, m.HasTarget = true, true

	walls := make(map[gridastar.Coord]bool)
	directions := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < cfg.Clusters; c++ {
		p := gridastar.Coord{X: rng.Intn(rows), Y: rng.Intn(columns)}
		for s := 0; s < cfg.Steps; s++ {
			if rng.Float64() < cfg.Density && p != m.Start && p != m.Target {
				walls[p] = true
			}
			d := directions[rng.Intn(len(directions))]
			np := gridastar.Coord{X: p.X + d[0], Y: p.Y + d[1]}
			if np.X >= 0 && np.X < rows && np.Y >= 0 && np.Y < columns {
				p = np
			}
		}
	}

	m.Blocked = make([]gridastar.Coord, 0, len(walls))
	for c := range walls {
		m.Blocked = append(m.Blocked, c)
	}
	sortCoords(m.Blocked)
	return m
}
