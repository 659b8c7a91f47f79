package searcher

import "time"

// DecisionMetric summarizes one FindMove call.
type DecisionMetric struct {
	Duration     time.Duration
	Iterations   int
	FullPlayouts int // Rollouts that reached a terminal state
	Calls        int // Forward-model calls
}

type Collector interface {
	Start()
	AddFullPlayout()
	Complete(iterations, calls int) DecisionMetric
}

type collector struct {
	startTime    time.Time
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.fullPlayouts = 0
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts++
}

func (c *collector) Complete(iterations, calls int) DecisionMetric {
	return DecisionMetric{
		Duration:     time.Since(c.startTime),
		Iterations:   iterations,
		FullPlayouts: c.fullPlayouts,
		Calls:        calls,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()          {}
func (dummyCollector) AddFullPlayout() {}
func (dummyCollector) Complete(iterations, calls int) DecisionMetric {
	return DecisionMetric{}
}
