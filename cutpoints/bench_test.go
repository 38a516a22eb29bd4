package cutpoints_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/cutpoints"
)

// BenchmarkAnalyze_Path measures the pass on a path graph, the
// worst case for recursion depth (every edge a bridge).
func BenchmarkAnalyze_Path(b *testing.B) {
	const n = 10000
	g := core.NewGraph()
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.InsertVertex(float64(i), 0)
	}
	for i := 0; i < n-1; i++ {
		g.InsertEdge(ids[i], ids[i+1])
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*n - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cutpoints.Analyze(g)
	}
}

// BenchmarkAnalyze_RandomSparse measures the pass on a sparse random
// graph (duplicate insertions are rejected by the store).
func BenchmarkAnalyze_RandomSparse(b *testing.B) {
	const v = 5000
	const e = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	ids := make([]core.VertexID, v)
	for i := 0; i < v; i++ {
		ids[i] = g.InsertVertex(rnd.Float64()*1000, rnd.Float64()*1000)
	}
	for k := 0; k < e; k++ {
		g.InsertEdge(ids[rnd.Intn(v)], ids[rnd.Intn(v)])
	}

	b.ReportAllocs()
	b.SetBytes(int64(v + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cutpoints.Analyze(g)
	}
}
