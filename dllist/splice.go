package dllist

// Splice перенос всех элементов other в конец списка за O(1).
// После переноса other пуст. Узлы не копируются, итераторы на элементы
// other остаются действительными и указывают теперь на элементы данного
// списка.
//
// Перенос списка в самого себя игнорируется.
func (l *List[T]) Splice(other *List[T]) {
	l.SpliceBefore(other, l.End())
}

// SpliceBefore перенос всех элементов other перед pos за O(1).
func (l *List[T]) SpliceBefore(other *List[T], pos Iterator[T]) {
	if other == l {
		l.cfg.log().SelfSpliceIgnored(l.size)
		return
	}
	if other.size == 0 {
		return
	}

	l.lazyInit()
	first, last, size := other.detach()
	at := pos.n
	first.prev = at.prev
	at.prev.next = first
	last.next = at
	at.prev = last
	l.size += size
}

// MergeFunc слияние упорядоченного по less списка other с данным
// упорядоченным списком. Слияние устойчиво: из равных элементов первыми
// идут элементы данного списка. Узлы other переносятся без копирования,
// после слияния other пуст.
//
// Слияние списка с самим собой игнорируется.
func (l *List[T]) MergeFunc(other *List[T], less Less[T]) {
	if other == l {
		l.cfg.log().SelfMergeIgnored(l.size)
		return
	}
	if other.size == 0 {
		return
	}

	l.lazyInit()
	first, _, size := other.detach()
	cur := l.head.next
	n := first
	for i := 0; i < size; i++ {
		// Цепочка other замкнута на его сторожевой узел, поэтому идём по счётчику.
		next := n.next
		for cur != &l.tail && !less(n.value, cur.value) {
			cur = cur.next
		}
		n.link(cur.prev, cur)
		n = next
	}
	l.size += size
}
