package priority

import (
	"github.com/google/btree"
)

// entry is a bucket member. seq orders elements that the secondary
// comparator considers equal, oldest first.
type entry[T any] struct {
	elem T
	seq  uint64
}

// entryLess extends the secondary comparator into a total order over entries.
func entryLess[T any](less func(a, b T) bool) btree.LessFunc[entry[T]] {
	return func(a, b entry[T]) bool {
		if less(a.elem, b.elem) {
			return true
		}
		if less(b.elem, a.elem) {
			return false
		}
		return a.seq < b.seq
	}
}

// bucket holds the elements sharing one priority key in secondary order.
// A matrix never keeps an empty bucket.
type bucket[T any, P any] struct {
	key   P
	items *btree.BTreeG[entry[T]]
	less  btree.LessFunc[entry[T]]
	head  entry[T] // minimum entry, valid while items is non-empty
}

func newBucket[T any, P any](key P, degree int, less btree.LessFunc[entry[T]], fl *btree.FreeListG[entry[T]]) *bucket[T, P] {
	return &bucket[T, P]{
		key:   key,
		items: btree.NewWithFreeListG(degree, less, fl),
		less:  less,
	}
}

func (b *bucket[T, P]) len() int {
	return b.items.Len()
}

func (b *bucket[T, P]) insert(e entry[T]) {
	b.items.ReplaceOrInsert(e)
	if b.items.Len() == 1 || b.less(e, b.head) {
		b.head = e
	}
}

// delete removes e. When the targeted delete misses because the element's
// ordering attributes changed while it was held, the bucket is rebuilt
// without it and rebuilt is reported.
func (b *bucket[T, P]) delete(e entry[T]) (found, rebuilt bool) {
	if _, found = b.items.Delete(e); !found {
		found = b.rebuildWithout(e.seq)
		rebuilt = true
	}
	if found && b.head.seq == e.seq {
		b.refreshHead()
	}
	return found, rebuilt
}

func (b *bucket[T, P]) rebuildWithout(seq uint64) bool {
	keep := make([]entry[T], 0, b.items.Len())
	found := false
	b.items.Ascend(func(e entry[T]) bool {
		if e.seq == seq {
			found = true
		} else {
			keep = append(keep, e)
		}
		return true
	})
	if !found {
		return false
	}

	b.items.Clear(true)
	for _, e := range keep {
		b.items.ReplaceOrInsert(e)
	}
	b.refreshHead()
	return true
}

func (b *bucket[T, P]) popMin() entry[T] {
	e, _ := b.items.DeleteMin()
	b.refreshHead()
	return e
}

func (b *bucket[T, P]) refreshHead() {
	if head, ok := b.items.Min(); ok {
		b.head = head
	} else {
		b.head = entry[T]{}
	}
}

// ascend calls yield for each element in order and reports whether
// iteration ran to completion.
func (b *bucket[T, P]) ascend(yield func(T) bool) bool {
	more := true
	b.items.Ascend(func(e entry[T]) bool {
		more = yield(e.elem)
		return more
	})
	return more
}

func (b *bucket[T, P]) descend(yield func(T) bool) bool {
	more := true
	b.items.Descend(func(e entry[T]) bool {
		more = yield(e.elem)
		return more
	})
	return more
}

func (b *bucket[T, P]) clone() *bucket[T, P] {
	return &bucket[T, P]{
		key:   b.key,
		items: b.items.Clone(),
		less:  b.less,
		head:  b.head,
	}
}
