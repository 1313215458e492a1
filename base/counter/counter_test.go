package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	req := require.New(t)
	c := NewCounter(100)

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(1)
		}()
	}
	wg.Wait()

	req.Equal(100, c.Count())
	req.Equal(100, c.Total())
	req.True(c.Done())
}

func TestCounterEmpty(t *testing.T) {
	c := NewCounter(0)
	require.True(t, c.Done())
	require.Equal(t, 1, c.Add(1))
}
