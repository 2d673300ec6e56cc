package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsCount(t *testing.T) {
	p := NewPool(4)
	defer p.TearDown()

	var attempts int64
	results := p.Search(3, func() interface{} {
		n := atomic.AddInt64(&attempts, 1)
		if n%5 != 0 {
			// most candidates fail
			return nil
		}
		return n
	})

	require.Len(t, results, 3)
	for _, r := range results {
		n, ok := r.(int64)
		require.True(t, ok)
		assert.Zero(t, n%5)
	}
}

func TestSearchNilPool(t *testing.T) {
	var p *Pool

	calls := 0
	results := p.Search(2, func() interface{} {
		calls++
		if calls%3 != 0 {
			return nil
		}
		return calls
	})

	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0])
	assert.Equal(t, 6, results[1])
}

func TestSearchReusableAcrossCalls(t *testing.T) {
	p := NewPool(2)
	defer p.TearDown()

	for i := 0; i < 5; i++ {
		results := p.Search(1, func() interface{} { return "hit" })
		require.Len(t, results, 1)
		assert.Equal(t, "hit", results[0])
	}
}
