package priority_test

import (
	"fmt"
	"slices"

	"github.com/felix-zaslavskiy/PriorityMatrix/priority"
	"github.com/google/uuid"
)

// ExampleMatrix_minMax demonstrates the two ends of a matrix.
func ExampleMatrix_minMax() {
	// Ties inside a priority are broken by the higher value
	m := priority.NewMatrix[string, int](func(a, b string) bool {
		return a > b
	})

	_ = m.Insert("apple", 1)
	_ = m.Insert("banana", 1)
	_ = m.Insert("cherry", 2)

	e, p, _ := m.Min()
	fmt.Printf("Min: %s @ %d\n", e, p)
	e, p, _ = m.Max()
	fmt.Printf("Max: %s @ %d\n", e, p)

	fmt.Println(m)

	// Output:
	// Min: banana @ 1
	// Max: cherry @ 2
	// PriorityMatrix{
	// Priority 1: banana, apple
	// Priority 2: cherry
	// }
}

type node struct {
	name     string
	cpuClass int
	freeRAM  int
}

func (n *node) String() string {
	return fmt.Sprintf("%s(%d)", n.name, n.freeRAM)
}

type task struct {
	name string
	ram  int
}

// ExampleMatrix_scheduler places tasks on the lowest CPU class first, using the
// node with the most free memory within a class.
func ExampleMatrix_scheduler() {
	nodes := priority.NewMatrix[*node, int](func(a, b *node) bool {
		return a.freeRAM > b.freeRAM
	})

	for _, n := range []*node{
		{name: "Node1", cpuClass: 1, freeRAM: 10},
		{name: "Node2", cpuClass: 1, freeRAM: 6},
		{name: "Node3", cpuClass: 2, freeRAM: 10},
		{name: "Node4", cpuClass: 2, freeRAM: 6},
	} {
		_ = nodes.Insert(n, n.cpuClass)
	}

	tasks := []task{
		{"Task1", 5}, {"Task2", 6}, {"Task3", 5},
		{"Task4", 5}, {"Task5", 3}, {"Task6", 2},
		{"Task7", 4},
	}

	for _, t := range tasks {
		n, _, ok := nodes.Min()
		if !ok {
			fmt.Printf("%s: no node available\n", t.name)
			continue
		}
		fmt.Printf("%s -> %s\n", t.name, n.name)

		// Re-place the node after changing its free memory
		n.freeRAM -= t.ram
		nodes.Remove(n)
		if n.freeRAM > 0 {
			_ = nodes.Insert(n, n.cpuClass)
		}
	}

	fmt.Println(nodes)

	// Output:
	// Task1 -> Node1
	// Task2 -> Node2
	// Task3 -> Node1
	// Task4 -> Node3
	// Task5 -> Node4
	// Task6 -> Node3
	// Task7 -> Node4
	// PriorityMatrix{
	// Priority 2: Node3(3)
	// }
}

// ExampleMatrix_loadBalancer sends each request to the least loaded server,
// preferring heavier weighted servers at equal load.
func ExampleMatrix_loadBalancer() {
	names := map[uuid.UUID]string{}
	weight := map[uuid.UUID]int{}
	load := map[uuid.UUID]int{}

	servers := priority.NewMatrix[uuid.UUID, int](func(a, b uuid.UUID) bool {
		return weight[a] > weight[b]
	})

	for _, s := range []struct {
		name   string
		weight int
	}{{"alpha", 3}, {"beta", 5}, {"gamma", 2}} {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.name))
		names[id] = s.name
		weight[id] = s.weight
		_ = servers.Insert(id, 0)
	}

	for i := 1; i <= 6; i++ {
		id, _, _ := servers.Min()
		load[id]++
		servers.UpdatePriority(id, load[id])
		fmt.Printf("request %d -> %s\n", i, names[id])
	}

	id, l, _ := servers.Max()
	fmt.Printf("busiest: %s with %d\n", names[id], l)

	// Output:
	// request 1 -> beta
	// request 2 -> alpha
	// request 3 -> gamma
	// request 4 -> beta
	// request 5 -> alpha
	// request 6 -> gamma
	// busiest: beta with 2
}

// ExampleMatrix_All iterates in priority order.
func ExampleMatrix_All() {
	m := priority.NewMatrix[string, float64](func(a, b string) bool {
		return a < b
	})

	_ = m.Insert("low", 0.5)
	_ = m.Insert("high", 2.5)
	_ = m.Insert("mid-b", 1.5)
	_ = m.Insert("mid-a", 1.5)

	fmt.Println(slices.Collect(m.All()))
	fmt.Println(slices.Collect(m.Priorities()))

	// Output:
	// [low mid-a mid-b high]
	// [0.5 1.5 2.5]
}
