package utils

import "time"

// populationSmoothing weights the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks pacing and population figures across a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	Population           int
	Density              float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation. cells is the board area and
// duration the time since the previous generation.
func (s *Stats) Update(generation, population, cells int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
