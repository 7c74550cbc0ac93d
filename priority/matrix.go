package priority

import (
	"cmp"
	"fmt"

	"github.com/felix-zaslavskiy/PriorityMatrix/monitoring"
	"github.com/google/btree"
)

// slot is the reverse index entry of a held element.
type slot[T any, P any] struct {
	b   *bucket[T, P]
	seq uint64
}

// Matrix holds elements bucketed by a primary priority key and ordered by a
// secondary comparator within each bucket.
//
// The bucket index and the reverse index are updated together by every
// mutating method. A Matrix is not safe for concurrent use.
type Matrix[T comparable, P any] struct {
	keys     *btree.BTreeG[*bucket[T, P]]
	index    map[T]slot[T, P]
	keyLess  func(a, b P) bool
	less     btree.LessFunc[entry[T]]
	freelist *btree.FreeListG[entry[T]]

	// buckets holding the smallest and largest keys, nil when empty
	min, max *bucket[T, P]

	seq  uint64
	opts options
}

// NewMatrix creates a matrix keyed by an ordered priority type. less orders
// elements sharing a priority and returns true if a comes before b.
func NewMatrix[T comparable, P cmp.Ordered](less func(a, b T) bool, opts ...Option) *Matrix[T, P] {
	return NewMatrixFunc[T, P](cmp.Less[P], less, opts...)
}

// NewMatrixFunc creates a matrix whose priority keys are ordered by priorityLess.
// Both functions must define strict weak orderings; priority keys that compare
// equal share a bucket.
func NewMatrixFunc[T comparable, P any](priorityLess func(a, b P) bool, less func(a, b T) bool, opts ...Option) *Matrix[T, P] {
	if priorityLess == nil || less == nil {
		panic("priority: NewMatrixFunc requires non-nil comparators")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Matrix[T, P]{
		keys: btree.NewG[*bucket[T, P]](o.degree, func(a, b *bucket[T, P]) bool {
			return priorityLess(a.key, b.key)
		}),
		index:    make(map[T]slot[T, P]),
		keyLess:  priorityLess,
		less:     entryLess(less),
		freelist: btree.NewFreeListG[entry[T]](btree.DefaultFreeListSize),
		opts:     o,
	}
}

// Insert adds element with priority p. It returns ErrDuplicateElement, and
// leaves the matrix unchanged, if element is already held.
func (m *Matrix[T, P]) Insert(element T, p P) error {
	if _, exists := m.index[element]; exists {
		m.opts.stats.RecordDuplicate()
		m.log(monitoring.WARN, "duplicate_rejected", "element already present", func() map[string]interface{} {
			return map[string]interface{}{
				"element":  fmt.Sprint(element),
				"priority": fmt.Sprint(p),
			}
		})
		return fmt.Errorf("%w: %v", ErrDuplicateElement, element)
	}

	m.insert(element, p)
	m.opts.stats.RecordInsert()
	m.reportOccupancy()
	return nil
}

// Remove removes element and reports whether it was held.
func (m *Matrix[T, P]) Remove(element T) bool {
	if !m.remove(element) {
		return false
	}
	m.opts.stats.RecordRemove()
	m.reportOccupancy()
	return true
}

// UpdatePriority moves element to priority p, inserting it if it is not held.
// The element is re-placed within its bucket as well, so callers that changed
// its ordering attributes call UpdatePriority even when p is unchanged.
func (m *Matrix[T, P]) UpdatePriority(element T, p P) {
	m.remove(element)
	m.insert(element, p)
	m.opts.stats.RecordUpdate()
	m.reportOccupancy()
}

// Min returns the first element of the bucket with the smallest priority.
func (m *Matrix[T, P]) Min() (element T, p P, ok bool) {
	return m.peek(m.min)
}

// Max returns the first element of the bucket with the largest priority.
func (m *Matrix[T, P]) Max() (element T, p P, ok bool) {
	return m.peek(m.max)
}

// PopMin removes and returns the element Min would return.
func (m *Matrix[T, P]) PopMin() (element T, p P, ok bool) {
	return m.pop(m.min, "min")
}

// PopMax removes and returns the element Max would return.
func (m *Matrix[T, P]) PopMax() (element T, p P, ok bool) {
	return m.pop(m.max, "max")
}

// Len returns the number of elements held.
func (m *Matrix[T, P]) Len() int {
	return len(m.index)
}

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T, P]) IsEmpty() bool {
	return len(m.index) == 0
}

// Buckets returns the number of distinct priorities held.
func (m *Matrix[T, P]) Buckets() int {
	return m.keys.Len()
}

// Contains reports whether element is held.
func (m *Matrix[T, P]) Contains(element T) bool {
	_, ok := m.index[element]
	return ok
}

// Priority returns the priority element is held at.
func (m *Matrix[T, P]) Priority(element T) (p P, ok bool) {
	s, ok := m.index[element]
	if !ok {
		return p, false
	}
	return s.b.key, true
}

// Clear removes all elements. Options are kept.
func (m *Matrix[T, P]) Clear() {
	m.keys.Ascend(func(b *bucket[T, P]) bool {
		b.items.Clear(true)
		return true
	})
	m.keys.Clear(false)
	clear(m.index)
	m.min, m.max = nil, nil
	m.reportOccupancy()
}

// Clone returns an independent copy of m. The copy shares the comparators and
// the logger; it reports to no stats collector.
func (m *Matrix[T, P]) Clone() *Matrix[T, P] {
	c := &Matrix[T, P]{
		keys:     m.keys.Clone(),
		index:    make(map[T]slot[T, P], len(m.index)),
		keyLess:  m.keyLess,
		less:     m.less,
		freelist: m.freelist,
		seq:      m.seq,
		opts:     m.opts,
	}
	c.opts.stats = monitoring.NopStats()

	m.keys.Ascend(func(b *bucket[T, P]) bool {
		cb := b.clone()
		c.keys.ReplaceOrInsert(cb)
		cb.items.Ascend(func(e entry[T]) bool {
			c.index[e.elem] = slot[T, P]{b: cb, seq: e.seq}
			return true
		})
		return true
	})
	c.min, _ = c.keys.Min()
	c.max, _ = c.keys.Max()

	return c
}

func (m *Matrix[T, P]) insert(element T, p P) {
	b := m.bucketFor(p)
	m.seq++
	e := entry[T]{elem: element, seq: m.seq}
	b.insert(e)
	m.index[element] = slot[T, P]{b: b, seq: e.seq}
}

func (m *Matrix[T, P]) remove(element T) bool {
	s, ok := m.index[element]
	if !ok {
		return false
	}
	delete(m.index, element)

	if _, rebuilt := s.b.delete(entry[T]{elem: element, seq: s.seq}); rebuilt {
		m.log(monitoring.WARN, "bucket_rebuilt", "element ordering changed while held", func() map[string]interface{} {
			return map[string]interface{}{
				"element":  fmt.Sprint(element),
				"priority": fmt.Sprint(s.b.key),
			}
		})
	}
	m.prune(s.b)
	return true
}

func (m *Matrix[T, P]) pop(b *bucket[T, P], end string) (element T, p P, ok bool) {
	if b == nil {
		return element, p, false
	}

	e := b.popMin()
	delete(m.index, e.elem)
	m.prune(b)

	m.opts.stats.RecordExtract(end)
	m.reportOccupancy()
	return e.elem, b.key, true
}

func (m *Matrix[T, P]) peek(b *bucket[T, P]) (element T, p P, ok bool) {
	if b == nil {
		return element, p, false
	}
	return b.head.elem, b.key, true
}

// bucketFor returns the bucket for p, creating it if needed.
func (m *Matrix[T, P]) bucketFor(p P) *bucket[T, P] {
	if b, ok := m.keys.Get(&bucket[T, P]{key: p}); ok {
		return b
	}

	b := newBucket[T](p, m.opts.degree, m.less, m.freelist)
	m.keys.ReplaceOrInsert(b)
	if m.min == nil || m.keyLess(p, m.min.key) {
		m.min = b
	}
	if m.max == nil || m.keyLess(m.max.key, p) {
		m.max = b
	}

	m.log(monitoring.DEBUG, "bucket_created", "priority bucket created", func() map[string]interface{} {
		return map[string]interface{}{"priority": fmt.Sprint(p)}
	})
	return b
}

// prune drops b from the key index once it is empty.
func (m *Matrix[T, P]) prune(b *bucket[T, P]) {
	if b.len() > 0 {
		return
	}

	m.keys.Delete(b)
	if m.min == b {
		m.min, _ = m.keys.Min()
	}
	if m.max == b {
		m.max, _ = m.keys.Max()
	}

	m.log(monitoring.DEBUG, "bucket_pruned", "empty priority bucket removed", func() map[string]interface{} {
		return map[string]interface{}{"priority": fmt.Sprint(b.key)}
	})
}

func (m *Matrix[T, P]) log(level monitoring.LogLevel, eventType, message string, details func() map[string]interface{}) {
	if !m.opts.logger.Enabled(level) {
		return
	}
	m.opts.logger.Log(level, eventType, message, details())
}

func (m *Matrix[T, P]) reportOccupancy() {
	m.opts.stats.SetOccupancy(len(m.index), m.keys.Len())
}
