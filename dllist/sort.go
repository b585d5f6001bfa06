package dllist

// Less строгий слабый порядок: возвращает true если a строго предшествует b.
type Less[T any] func(a, b T) bool

// SortFunc устойчивая сортировка слиянием в порядке задаваемом less.
// Узлы не копируются, меняются только связи между ними. Итераторы остаются
// действительными и указывают на те же значения.
func (l *List[T]) SortFunc(less Less[T]) {
	if l.size <= 1 {
		return
	}

	first, last := l.mergeSort(l.head.next, less)
	l.head.next = first
	first.prev = &l.head
	l.tail.prev = last
	last.next = &l.tail
}

// mergeSort сортировка цепочки начинающейся с first и заканчивающейся
// на tail. Возвращает первый и последний узлы отсортированной цепочки.
func (l *List[T]) mergeSort(first *node[T], less Less[T]) (*node[T], *node[T]) {
	end := &l.tail
	if first.next == end {
		return first, first
	}

	slow := first
	fast := first.next
	for fast != end && fast.next != end {
		slow = slow.next
		fast = fast.next.next
	}

	mid := slow.next
	slow.next = end
	mid.prev = &l.head

	lfirst, llast := l.mergeSort(first, less)
	rfirst, rlast := l.mergeSort(mid, less)
	return l.mergeChains(lfirst, llast, rfirst, rlast, less)
}

// mergeChains слияние двух отсортированных цепочек заканчивающихся на tail.
// Правый элемент берётся только если он строго меньше левого, это
// обеспечивает устойчивость.
func (l *List[T]) mergeChains(left, llast, right, rlast *node[T], less Less[T]) (*node[T], *node[T]) {
	end := &l.tail

	// Голова списка используется как фиктивный узел: до окончания сортировки
	// её связи не имеют значения.
	cur := &l.head
	for left != end && right != end {
		if less(right.value, left.value) {
			cur.next = right
			right.prev = cur
			right = right.next
		} else {
			cur.next = left
			left.prev = cur
			left = left.next
		}
		cur = cur.next
	}

	last := cur
	switch {
	case left != end:
		cur.next = left
		left.prev = cur
		last = llast
	case right != end:
		cur.next = right
		right.prev = cur
		last = rlast
	default:
		cur.next = end
	}

	return l.head.next, last
}
