package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	defaultMinNeighborsToSurvive = 2
	defaultMaxNeighborsToSurvive = 3
	defaultMinNeighborsToSpawn   = 3
	defaultMaxNeighborsToSpawn   = 3
)

// ErrContradictoryRules is returned when a maximum neighbor bound is below its minimum
var ErrContradictoryRules = errors.New("contradictory rules")

// GameRules holds inclusive bounds on the number of living neighbors
// needed for a living cell to survive and for a dead cell to spawn.
type GameRules struct {
	minNeighborsToSurvive int
	maxNeighborsToSurvive int
	minNeighborsToSpawn   int
	maxNeighborsToSpawn   int
}

// Default returns Conway's rules: survive on 2 or 3 neighbors, spawn on exactly 3
func Default() GameRules {
	return GameRules{
		minNeighborsToSurvive: defaultMinNeighborsToSurvive,
		maxNeighborsToSurvive: defaultMaxNeighborsToSurvive,
		minNeighborsToSpawn:   defaultMinNeighborsToSpawn,
		maxNeighborsToSpawn:   defaultMaxNeighborsToSpawn,
	}
}

// New builds a rule set from inclusive survive and spawn bounds
func New(minSurvive, maxSurvive, minSpawn, maxSpawn int) (GameRules, error) {
	if maxSurvive < minSurvive {
		return GameRules{}, errors.Wrapf(ErrContradictoryRules,
			"[rules.New] max neighbors to survive %d < min neighbors to survive %d", maxSurvive, minSurvive)
	}
	if maxSpawn < minSpawn {
		return GameRules{}, errors.Wrapf(ErrContradictoryRules,
			"[rules.New] max neighbors to spawn %d < min neighbors to spawn %d", maxSpawn, minSpawn)
	}
	return GameRules{
		minNeighborsToSurvive: minSurvive,
		maxNeighborsToSurvive: maxSurvive,
		minNeighborsToSpawn:   minSpawn,
		maxNeighborsToSpawn:   maxSpawn,
	}, nil
}

// CellShouldDie reports whether a living cell with the given neighbor count dies
func (r GameRules) CellShouldDie(neighbors int) bool {
	return neighbors < r.minNeighborsToSurvive || neighbors > r.maxNeighborsToSurvive
}

// CellShouldSpawn reports whether a dead cell with the given neighbor count comes alive
func (r GameRules) CellShouldSpawn(neighbors int) bool {
	return neighbors >= r.minNeighborsToSpawn && neighbors <= r.maxNeighborsToSpawn
}

/*
Apply determines the next state of a cell.

A living cell stays alive unless it should die, a dead cell comes alive if it should spawn.
*/
func (r GameRules) Apply(neighbors int, alive bool) bool {
	if alive {
		return !r.CellShouldDie(neighbors)
	}
	return r.CellShouldSpawn(neighbors)
}

func (r GameRules) String() string {
	return fmt.Sprintf("survive [%d,%d] spawn [%d,%d]",
		r.minNeighborsToSurvive, r.maxNeighborsToSurvive,
		r.minNeighborsToSpawn, r.maxNeighborsToSpawn)
}
