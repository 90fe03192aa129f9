// Package unionfind implements a weighted quick-union disjoint-set over the
// dense index space [0, n).
//
// Unions always hang the root of the smaller tree under the root of the
// larger one, so every tree has height O(log n) and Find needs no path
// compression.
package unionfind

// UF is a weighted quick-union structure stored as two parallel slices.
type UF struct {
	parent []int
	size   []int
	sets   int
}

// New returns n singleton sets. A negative n is treated as zero.
func New(n int) *UF {
	if n < 0 {
		n = 0
	}
	uf := &UF{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Len returns the number of elements.
func (uf *UF) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UF) Count() int { return uf.sets }

// Find returns the root of the set containing i. It panics if i is outside
// [0, Len()).
func (uf *UF) Find(i int) int {
	for i != uf.parent[i] {
		i = uf.parent[i]
	}
	return i
}

// Connected reports whether a and b belong to the same set.
func (uf *UF) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Union merges the sets containing a and b. On equal sizes b's root is
// attached under a's.
func (uf *UF) Union(a, b int) {
	ra := uf.Find(a)
	rb := uf.Find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		uf.parent[ra] = rb
		uf.size[rb] += uf.size[ra]
	} else {
		uf.parent[rb] = ra
		uf.size[ra] += uf.size[rb]
	}
	uf.sets--
}

// SizeOf returns the number of elements in the set containing i.
func (uf *UF) SizeOf(i int) int {
	return uf.size[uf.Find(i)]
}
