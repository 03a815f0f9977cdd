package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector_Snapshot(t *testing.T) {
	c := NewCollector()
	c.RecordBuild()
	c.RecordQuery(3, 10, true, false)
	c.RecordQuery(1, 2, false, true)

	snap := c.Snapshot()
	require.Equal(t, uint64(1), snap.Builds)
	require.Equal(t, uint64(2), snap.Queries)
	require.Equal(t, uint64(12), snap.CandidatesScanned)
	require.Equal(t, uint64(1), snap.BudgetHits)
	require.Equal(t, uint64(1), snap.GiveUps)
	require.Equal(t, uint64(4), snap.Rounds)
}

func TestCollector_ConcurrentRecordQuery(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordQuery(1, 1, false, false)
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(100), c.Snapshot().Queries)
}
