package ids

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorUniqueUnderConcurrency(t *testing.T) {
	gen, err := NewGenerator(1)
	require.NoError(t, err)

	const workers = 8
	const perWorker = 250

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, gen.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker, "generated ids must be pairwise distinct")
}

func TestGeneratorMonotonic(t *testing.T) {
	gen, err := NewGenerator(2)
	require.NoError(t, err)

	prev := int64(-1)
	for i := 0; i < 1000; i++ {
		id, err := strconv.ParseInt(gen.Next(), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, prev, "ids must increase in generation order")
		prev = id
	}
}
