package metrics

import (
	"time"
)

// CheckMetric summarizes the transformation checks run on one game.
type CheckMetric struct {
	Players           int
	FlatPlayers       int
	LocalGames        int
	Profiles          int
	UtilityChecks     int
	UtilityMismatches int
	NashChecks        int
	NashMismatches    int
	Duration          time.Duration
}

// Holds reports whether every check on the game passed.
func (m CheckMetric) Holds() bool {
	return m.UtilityMismatches == 0 && m.NashMismatches == 0
}

// GameRecord ties a check metric to its generated game.
type GameRecord struct {
	ID   int
	Seed uint64 // Seed of the run the game belongs to
	CheckMetric
}

type Collector interface {
	Start(players, flatPlayers, localGames, profiles int)
	AddUtilityCheck(match bool)
	AddNashCheck(match bool)
	Complete() CheckMetric
}

type collector struct {
	metric    CheckMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(players, flatPlayers, localGames, profiles int) {
	c.metric = CheckMetric{
		Players:     players,
		FlatPlayers: flatPlayers,
		LocalGames:  localGames,
		Profiles:    profiles,
	}
	c.startTime = time.Now()
}

func (c *collector) AddUtilityCheck(match bool) {
	c.metric.UtilityChecks++
	if !match {
		c.metric.UtilityMismatches++
	}
}

func (c *collector) AddNashCheck(match bool) {
	c.metric.NashChecks++
	if !match {
		c.metric.NashMismatches++
	}
}

func (c *collector) Complete() CheckMetric {
	c.metric.Duration = time.Since(c.startTime)
	return c.metric
}
