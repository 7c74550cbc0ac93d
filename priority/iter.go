package priority

import (
	"fmt"
	"iter"
	"strings"
)

// All returns the elements by ascending priority, then in bucket order.
// The sequence is invalid once the matrix is modified.
func (m *Matrix[T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.keys.Ascend(func(b *bucket[T, P]) bool {
			return b.ascend(yield)
		})
	}
}

// Backward returns the elements of All in reverse order.
func (m *Matrix[T, P]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.keys.Descend(func(b *bucket[T, P]) bool {
			return b.descend(yield)
		})
	}
}

// Priorities returns the distinct priorities held, ascending.
func (m *Matrix[T, P]) Priorities() iter.Seq[P] {
	return func(yield func(P) bool) {
		m.keys.Ascend(func(b *bucket[T, P]) bool {
			return yield(b.key)
		})
	}
}

// Bucket returns the elements held at priority p in bucket order.
func (m *Matrix[T, P]) Bucket(p P) iter.Seq[T] {
	return func(yield func(T) bool) {
		if b, ok := m.keys.Get(&bucket[T, P]{key: p}); ok {
			b.ascend(yield)
		}
	}
}

// String renders each priority on its own line followed by its elements.
func (m *Matrix[T, P]) String() string {
	var sb strings.Builder
	sb.WriteString("PriorityMatrix{")

	m.keys.Ascend(func(b *bucket[T, P]) bool {
		fmt.Fprintf(&sb, "\nPriority %v: ", b.key)
		first := true
		b.ascend(func(e T) bool {
			if !first {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, e)
			first = false
			return true
		})
		return true
	})

	sb.WriteString("\n}")
	return sb.String()
}
