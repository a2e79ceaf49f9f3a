package namedvec

import (
	"fmt"
	"testing"
)

// --- Test Data ---

func filled(n int) *Vec[num] {
	v := WithCapacity[num](n)
	for i := range n {
		v.Push(nn(fmt.Sprintf("field_%d", i), i))
	}
	return v
}

// --- Benchmarks ---

func BenchmarkPush(b *testing.B) {
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("field_%d", i)
	}
	b.ResetTimer()
	for b.Loop() {
		v := New[num]()
		for i, k := range keys {
			v.Push(nn(k, i))
		}
	}
}

func BenchmarkGetByName(b *testing.B) {
	v := filled(1000)
	l := ByName("field_500")
	for b.Loop() {
		v.Get(l)
	}
}

func BenchmarkGetByIndex(b *testing.B) {
	v := filled(1000)
	l := ByIndex(500)
	for b.Loop() {
		v.Get(l)
	}
}

func BenchmarkInsertRemoveFront(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := filled(n)
			item := nn("front", -1)
			for b.Loop() {
				v.Insert(0, item)
				v.Remove(ByIndex(0))
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	v := filled(1000)
	x, y := ByName("field_1"), ByIndex(998)
	for b.Loop() {
		v.Swap(x, y)
	}
}
