package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run
type Config struct {
	Iterations            int    `json:"iterations"`
	DumpAll               bool   `json:"dump_all"`
	AliveCell             string `json:"alive_cell"`
	DeadCell              string `json:"dead_cell"`
	RowSeparator          string `json:"row_separator"`
	MinNeighborsToSurvive int    `json:"min_neighbors_to_survive"`
	MaxNeighborsToSurvive int    `json:"max_neighbors_to_survive"`
	MinNeighborsToSpawn   int    `json:"min_neighbors_to_spawn"`
	MaxNeighborsToSpawn   int    `json:"max_neighbors_to_spawn"`
	Parallelism           int    `json:"parallelism"`
	UseMemoryPool         bool   `json:"use_memory_pool"`
	StopOnCycle           bool   `json:"stop_on_cycle"`
	CycleWindow           int    `json:"cycle_window"`
	Print                 bool   `json:"print"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Iterations:            0, // must come from the command line or the file
		DumpAll:               false,
		AliveCell:             "*",
		DeadCell:              "_",
		RowSeparator:          "\n",
		MinNeighborsToSurvive: 2,
		MaxNeighborsToSurvive: 3,
		MinNeighborsToSpawn:   3,
		MaxNeighborsToSpawn:   3,
		Parallelism:           4,
		UseMemoryPool:         true,
		StopOnCycle:           false,
		CycleWindow:           5,
		Print:                 false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values that do not depend on the game itself
func (c Config) Validate() error {
	for name, v := range map[string]string{
		"alive_cell":    c.AliveCell,
		"dead_cell":     c.DeadCell,
		"row_separator": c.RowSeparator,
	} {
		if len(v) != 1 {
			return errors.Errorf("[Config.Validate] %s must be a single byte, got %q", name, v)
		}
	}
	if c.Iterations <= 0 {
		return errors.Errorf("[Config.Validate] iterations must be positive, got %d", c.Iterations)
	}
	if c.Parallelism < 1 {
		return errors.Errorf("[Config.Validate] parallelism must be at least 1, got %d", c.Parallelism)
	}
	if c.StopOnCycle && c.CycleWindow < 1 {
		return errors.Errorf("[Config.Validate] cycle_window must be at least 1, got %d", c.CycleWindow)
	}
	return nil
}
