package avl_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlds/avl"
)

// benchSizes are the workload sizes exercised by every benchmark below.
var benchSizes = []struct {
	name string
	n    int
}{
	{"1e3", 1_000},
	{"1e4", 10_000},
	{"1e5", 100_000},
}

// buildRandom returns a tree of n pseudo-random keys and the keys used,
// seeded deterministically for reproducibility.
func buildRandom(n int) (*avl.Tree[int], []int) {
	r := rand.New(rand.NewSource(1))
	t := avl.New[int]()
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Int()
		_ = t.Insert(keys[i])
	}

	return t, keys
}

func BenchmarkInsert(b *testing.B) {
	for _, sz := range benchSizes {
		b.Run(sz.name, func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			keys := make([]int, sz.n)
			for i := range keys {
				keys[i] = r.Int()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t := avl.New[int]()
				for _, k := range keys {
					_ = t.Insert(k)
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, sz := range benchSizes {
		b.Run(sz.name, func(b *testing.B) {
			t, keys := buildRandom(sz.n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t.Contains(keys[i%len(keys)])
			}
		})
	}
}

func BenchmarkRemoveInsertCycle(b *testing.B) {
	for _, sz := range benchSizes {
		b.Run(sz.name, func(b *testing.B) {
			t, keys := buildRandom(sz.n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k := keys[i%len(keys)]
				t.Remove(k)
				_ = t.Insert(k)
			}
		})
	}
}
