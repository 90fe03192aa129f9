package life

import (
	"life-ca/internal/core"
	"life-ca/pkg/unionfind"
)

// connect joins every alive cell with each of its alive toroidal neighbours.
func connect(g *core.Grid) *unionfind.UF {
	uf := unionfind.New(g.Len())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			if g.At(idx) != core.Alive {
				continue
			}
			for _, n := range g.NeighborIndices(r, c) {
				if g.At(n) == core.Alive {
					uf.Union(idx, n)
				}
			}
		}
	}
	return uf
}

// Communities returns the number of groups of alive cells connected through
// 8-adjacency on the torus. An isolated alive cell is a community of its own.
func Communities(g *core.Grid) int {
	if g.AliveCount() == 0 {
		return 0
	}
	uf := connect(g)
	seen := make([]bool, g.Len())
	count := 0
	for i := 0; i < g.Len(); i++ {
		if g.At(i) != core.Alive {
			continue
		}
		root := uf.Find(i)
		if !seen[root] {
			seen[root] = true
			count++
		}
	}
	return count
}

// CommunityLabels assigns each alive cell the index of its community, with
// communities numbered from 0 in row-major order of their first cell. Dead
// cells are labelled -1. The second result is the number of communities.
func CommunityLabels(g *core.Grid) ([]int, int) {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	if g.AliveCount() == 0 {
		return labels, 0
	}
	uf := connect(g)
	byRoot := make(map[int]int)
	for i := range labels {
		if g.At(i) != core.Alive {
			continue
		}
		root := uf.Find(i)
		label, ok := byRoot[root]
		if !ok {
			label = len(byRoot)
			byRoot[root] = label
		}
		labels[i] = label
	}
	return labels, len(byRoot)
}

// CommunitySizes returns the number of cells in each community, indexed by
// the labels of CommunityLabels.
func CommunitySizes(g *core.Grid) []int {
	labels, n := CommunityLabels(g)
	return sizesOf(labels, n)
}

func sizesOf(labels []int, n int) []int {
	sizes := make([]int, n)
	for _, label := range labels {
		if label >= 0 {
			sizes[label]++
		}
	}
	return sizes
}
