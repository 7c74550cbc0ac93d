// Package priority implements a two-level priority structure. Elements are grouped
// into buckets by a primary, totally ordered priority key, and ordered inside each
// bucket by a secondary comparator fixed when the matrix is created.
//
// One may think of the priority key as the rows of a matrix and the secondary
// ordering as the column order of the items in each row. A scheduler holding
// compute nodes could use the CPU class as the priority and the free memory as the
// secondary order:
//
//	1: {node1(12GB), node2(8GB)}
//	2: {node3(16GB), node4(10GB)}
//
// Min returns node1 and Max returns node3: the head of the smallest and the
// largest row.
//
// The rows are held in a B-tree keyed by priority, each row is itself a B-tree of
// elements, and a map from element to row serves as a reverse index.
//
// Key features:
//   - Generic over any comparable element type and any ordered priority type
//   - O(log n) Insert, Remove, UpdatePriority, PopMin and PopMax
//   - O(1) Min, Max, Len and membership lookups
//   - Rows are dropped as soon as they become empty
//   - Elements that compare equal within a row keep insertion order
//   - Ordered iteration with iter.Seq
//
// Basic usage:
//
//	m := priority.NewMatrix[*Node, int](func(a, b *Node) bool {
//	    return a.FreeRAM > b.FreeRAM // more memory first
//	})
//
//	_ = m.Insert(node1, 1)
//	_ = m.Insert(node3, 2)
//
//	if n, class, ok := m.Min(); ok {
//	    fmt.Printf("schedule on %s (class %d)\n", n.Name, class)
//	}
//
//	// Re-place a node after changing its attributes
//	node1.FreeRAM -= 4
//	m.UpdatePriority(node1, 1)
//
//	for n := range m.All() {
//	    fmt.Println(n.Name)
//	}
//
// Elements are located through their comparator position, so a held element's
// ordering attributes must not change unless UpdatePriority, or Remove followed by
// Insert, is called right after. Inserting an element that is already held returns
// ErrDuplicateElement.
//
// A Matrix is not safe for concurrent use; callers sharing one guard it with a
// single mutex.
package priority
