package utils

import (
	"fmt"
	"time"
)

// Stats collects per-run figures for the summary line
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation, population, boundingBoxSize int) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.BoundingBoxSize = boundingBoxSize
	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

func (s *Stats) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Bounding box: %d cells | Avg Pop: %.1f | %.1f gen/sec",
		s.TotalGenerations, s.ActiveCells, s.BoundingBoxSize, s.AveragePopulation, s.GenerationsPerSecond)
}
