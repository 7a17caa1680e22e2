package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-treaps/Treaps"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkItemCount = 1 << 13
	btreeDegree        = 32
)

// compares with https://github.com/emirpasic/gods trees/redblacktree,
// https://github.com/google/btree and https://github.com/petar/GoLLRB, the
// usual ordered trees.
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap
// are unordered baselines: they bound what point operations cost when no
// order is kept at all, so scenario 4 has no entry for them.
func setupTreap(b *testing.B) *Treaps.Treap[int, uint32] {
	b.Helper()
	m := Treaps.New[int, uint32]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Add(i)
	}
	return m
}

func setupRBTree(b *testing.B) *redblacktree.Tree {
	b.Helper()
	m := redblacktree.NewWithIntComparator()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	m := btree.NewOrderedG[int](btreeDegree)
	for i := 0; i < benchmarkItemCount; i++ {
		m.ReplaceOrInsert(i)
	}
	return m
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		m.ReplaceOrInsert(llrb.Int(i))
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark1ReadTreap(b *testing.B) {
	m := setupTreap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if !m.Has(i) {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadRBTree(b *testing.B) {
	m := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if _, in := m.Get(i); !in {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if !m.Has(i) {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if !m.Has(llrb.Int(i)) {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2InsertTreap(b *testing.B) {
	for range b.N {
		m := Treaps.New[int, uint32]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Add(i)
		}
	}
}

func Benchmark2InsertRBTree(b *testing.B) {
	for range b.N {
		m := redblacktree.NewWithIntComparator()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
	}
}

func Benchmark2InsertBTree(b *testing.B) {
	for range b.N {
		m := btree.NewOrderedG[int](btreeDegree)
		for i := 0; i < benchmarkItemCount; i++ {
			m.ReplaceOrInsert(i)
		}
	}
}

func Benchmark2InsertLLRB(b *testing.B) {
	for range b.N {
		m := llrb.New()
		for i := 0; i < benchmarkItemCount; i++ {
			m.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func Benchmark2InsertHaxMap(b *testing.B) {
	for range b.N {
		m := haxmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark2InsertHashMap(b *testing.B) {
	for range b.N {
		m := hashmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark3DeleteTreap(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupTreap(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func Benchmark3DeleteRBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupRBTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Remove(i)
		}
	}
}

func Benchmark3DeleteBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupBTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Delete(i)
		}
	}
}

func Benchmark3DeleteLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupLLRB(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Delete(llrb.Int(i))
		}
	}
}

func Benchmark3DeleteHaxMap(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupHaxMap(b)
		b.StartTimer()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func Benchmark3DeleteHashMap(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupHashMap(b)
		b.StartTimer()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func Benchmark4AscendTreap(b *testing.B) {
	m := setupTreap(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		m.InOrder(func(v *int) bool {
			if *v <= prev {
				b.Fail()
			}
			prev = *v
			return true
		}, nil)
	}
}

func Benchmark4AscendRBTree(b *testing.B) {
	m := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		for it := m.Iterator(); it.Next(); {
			if v := it.Key().(int); v <= prev {
				b.Fail()
			} else {
				prev = v
			}
		}
	}
}

func Benchmark4AscendBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		m.Ascend(func(v int) bool {
			if v <= prev {
				b.Fail()
			}
			prev = v
			return true
		})
	}
}

func Benchmark4AscendLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		m.AscendGreaterOrEqual(llrb.Int(0), func(i llrb.Item) bool {
			if v := int(i.(llrb.Int)); v <= prev {
				b.Fail()
			} else {
				prev = v
			}
			return true
		})
	}
}
