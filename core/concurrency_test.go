package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every edge is recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num+1, g.VertexCount())
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWrite mixes readers and writers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph[int]()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(0, id+1, 1)
		}(i)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_ = g.Neighbors(v)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.Degree(0))
}
