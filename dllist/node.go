package dllist

// node узел списка. Сторожевые узлы списка тоже имеют этот тип,
// но значения в них не используются.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

// link вставка узла n между prev и next.
func (n *node[T]) link(prev, next *node[T]) {
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
}

// unlink исключение узла из цепочки.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.cleanup()
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil // для упрощения работы GC
}
