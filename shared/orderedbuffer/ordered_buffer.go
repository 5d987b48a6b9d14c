package orderedbuffer

import (
	"sort"
)

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps at most maxBufLen values sorted by compare.
// Inserting into a full buffer evicts the smallest value.
//
// Not safe for concurrent use; callers serialize access.
type OrderedBoundedBuffer[T any] struct {
	data      []T
	maxBufLen int
	compare   CompareFunc[T]
}

func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	if maxBufLen <= 0 {
		panic("maxBufLen should be greater than 0")
	}
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen+1),
		maxBufLen: maxBufLen,
		compare:   cmp,
	}
}

// Insert places val after every value that does not compare greater,
// so equal values keep insertion order. It returns the evicted value, if any.
func (b *OrderedBoundedBuffer[T]) Insert(val T) (evicted T, ok bool) {
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})

	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	if len(b.data) > b.maxBufLen {
		evicted = b.data[0]
		copy(b.data, b.data[1:])
		b.data = b.data[:len(b.data)-1]
		return evicted, true
	}
	return evicted, false
}

// Items returns a copy of the buffered values in order.
func (b *OrderedBoundedBuffer[T]) Items() []T {
	return append([]T(nil), b.data...)
}

func (b *OrderedBoundedBuffer[T]) Len() int {
	return len(b.data)
}

func (b *OrderedBoundedBuffer[T]) Reset() {
	b.data = b.data[:0]
}
