package counter

import "sync"

// Counter tracks completed units against a known total.
type Counter struct {
	count int
	total int
	mu    sync.RWMutex
}

func NewCounter(total int) *Counter {
	return &Counter{total: total}
}

// Add returns the count after adding val.
func (c *Counter) Add(val int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += val
	return c.count
}

func (c *Counter) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

func (c *Counter) Total() int {
	return c.total
}

// Done reports whether every unit has completed
func (c *Counter) Done() bool {
	return c.Count() >= c.total
}
