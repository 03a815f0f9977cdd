package rtree

import (
	"math"
	"sort"
)

// strPack partitions entries into leaf-sized groups using a recursive,
// axis-cycling Sort-Tile-Recursive pass: at each level, sort the slice
// by the current axis, slice it into roughly leafGroups^(1/k) slabs,
// and recurse into each slab on the next axis (round-robin over the k
// coordinates) until a slab is small enough to become one leaf.
//
// For k=1 this degenerates to the classic 1-D STR: sort once, chunk
// into ceil(n/maxEntries) near-equal runs of at most maxEntries.
func strPack(entries []Entry, axis, k, maxEntries int) [][]Entry {
	n := len(entries)
	if n <= maxEntries {
		return [][]Entry{entries}
	}

	leafGroups := ceilDiv(n, maxEntries)
	slabs := ceilRoot(leafGroups, k)
	if slabs < 2 {
		slabs = 2
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Point[axis] < entries[j].Point[axis]
	})

	slabSize := ceilDiv(n, slabs)
	nextAxis := (axis + 1) % k
	var groups [][]Entry
	for i := 0; i < n; i += slabSize {
		end := i + slabSize
		if end > n {
			end = n
		}
		groups = append(groups, strPack(entries[i:end], nextAxis, k, maxEntries)...)
	}
	return groups
}

// buildTree bulk-packs entries into a tree rooted at a single node.
// Returns nil for an empty entries slice (caller handles the empty
// tree as size 0 / no root).
func buildTree(entries []Entry, k, maxEntries int) *node {
	if len(entries) == 0 {
		return nil
	}

	groups := strPack(append([]Entry(nil), entries...), 0, k, maxEntries)
	level := make([]*node, len(groups))
	for i, g := range groups {
		level[i] = leafNode(g)
	}

	for len(level) > 1 {
		level = packLevel(level, maxEntries)
	}
	return level[0]
}

func leafNode(entries []Entry) *node {
	boxes := make([]box, len(entries))
	for i, e := range entries {
		boxes[i] = pointBox(e.Point)
	}
	return &node{mbr: union(boxes), entries: entries}
}

// packLevel groups nodes into parents of at most maxEntries children
// each, computing each parent's mbr as the union of its children's.
func packLevel(nodes []*node, maxEntries int) []*node {
	var parents []*node
	for i := 0; i < len(nodes); i += maxEntries {
		end := i + maxEntries
		if end > len(nodes) {
			end = len(nodes)
		}
		children := nodes[i:end]
		boxes := make([]box, len(children))
		for j, c := range children {
			boxes[j] = c.mbr
		}
		parents = append(parents, &node{mbr: union(boxes), children: children})
	}
	return parents
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// ceilRoot returns ceil(n^(1/k)), at least 1.
func ceilRoot(n, k int) int {
	if k <= 1 {
		return n
	}
	root := math.Pow(float64(n), 1/float64(k))
	r := int(math.Ceil(root - 1e-9))
	if r < 1 {
		r = 1
	}
	return r
}
