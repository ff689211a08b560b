package stats

import (
	"time"

	"github.com/google/uuid"

	"jedna/game"
)

// SessionRecord summarizes one game session from the agent's side.
type SessionRecord struct {
	ID        string
	Strategy  string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Plays     int
	Draws     int
	Passes    int
	WildPlays int
	Unknown   int    // Messages with an unrecognized type
	EndReason string // "game_end" or "eof"
}

// Collector tallies the agent's replies over a session.
type Collector interface {
	Start(strategy string)
	AddAction(action game.Action)
	AddUnknown()
	Complete(endReason string) SessionRecord
}

type collector struct {
	id        string
	strategy  string
	startTime time.Time
	plays     int
	draws     int
	passes    int
	wildPlays int
	unknown   int
}

func NewCollector() Collector {
	return &collector{id: uuid.NewString()}
}

func (c *collector) Start(strategy string) {
	c.strategy = strategy
	c.startTime = time.Now()
}

func (c *collector) AddAction(action game.Action) {
	switch action.Action {
	case game.PlayAction:
		c.plays++
		if action.WildColor != "" {
			c.wildPlays++
		}
	case game.DrawAction:
		c.draws++
	case game.PassAction:
		c.passes++
	}
}

func (c *collector) AddUnknown() {
	c.unknown++
}

func (c *collector) Complete(endReason string) SessionRecord {
	now := time.Now()
	return SessionRecord{
		ID:        c.id,
		Strategy:  c.strategy,
		StartTime: c.startTime,
		EndTime:   now,
		Duration:  now.Sub(c.startTime),
		Plays:     c.plays,
		Draws:     c.draws,
		Passes:    c.passes,
		WildPlays: c.wildPlays,
		Unknown:   c.unknown,
		EndReason: endReason,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for when
// session records are disabled.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(strategy string)                   {}
func (c *dummyCollector) AddAction(action game.Action)            {}
func (c *dummyCollector) AddUnknown()                             {}
func (c *dummyCollector) Complete(endReason string) SessionRecord { return SessionRecord{} }
