package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type uniqueCallers struct {
	counter prometheus.Gauge
	seen    map[string]struct{}
	mu      sync.Mutex
}

const uniqueCallersCount = "unique_callers_count"

var totalUniqueCallersMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: switchInventory,
		Name:      uniqueCallersCount,
		Help:      "number of distinct callers that asked a question since the last reset",
	},
)

var UniqueCallers = &uniqueCallers{
	counter: totalUniqueCallersMetric,
	seen:    make(map[string]struct{}),
}

func (c *uniqueCallers) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seen = make(map[string]struct{})
	c.counter.Set(0)
}

// Observe records a caller; callers already seen are not counted twice.
func (c *uniqueCallers) Observe(caller string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.seen[caller]; exists {
		return
	}

	c.seen[caller] = struct{}{}
	c.counter.Inc()
}

func (c *uniqueCallers) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
