package dllist

// RemoveFunc удаление всех элементов удовлетворяющих pred.
// Возвращает количество удалённых элементов.
func (l *List[T]) RemoveFunc(pred func(v T) bool) int {
	if l.size == 0 {
		return 0
	}

	var removed int
	for n := l.head.next; n != &l.tail; {
		next := n.next
		if pred(n.value) {
			l.remove(n)
			removed++
		}
		n = next
	}

	return removed
}

// UniqueFunc удаление подряд идущих равных по eq элементов, из каждой
// такой серии остаётся первый элемент. Возвращает количество удалённых
// элементов.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.size <= 1 {
		return 0
	}

	var removed int
	for n := l.head.next.next; n != &l.tail; {
		next := n.next
		if eq(n.prev.value, n.value) {
			l.remove(n)
			removed++
		}
		n = next
	}

	return removed
}

// Reverse разворот списка на месте обменом связей узлов.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}

	for n := l.head.next; n != &l.tail; {
		next := n.next
		n.prev, n.next = n.next, n.prev
		n = next
	}

	first, last := l.head.next, l.tail.prev
	l.head.next, l.tail.prev = last, first
	last.prev = &l.head
	first.next = &l.tail
}
