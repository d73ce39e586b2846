package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Decided   int // Leaves where the last mover has won
	BestScore float64
	Ties      int // Number of moves sharing the best score
}

type MoveMetric struct {
	Step   int
	Player string // Player name
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Player name
	Winner         string // Player name
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Depth int    `json:"depth"` // 0 for agents that do not search
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf(decided bool)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	decided   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.decided.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf(decided bool) {
	m.leaves.Add(1)
	if decided {
		m.decided.Add(1)
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Decided:  int(m.decided.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf(decided bool)   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
