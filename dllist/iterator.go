package dllist

// Iterator двунаправленный итератор списка. Итераторы сравниваются
// оператором ==, равны итераторы указывающие на один и тот же узел.
//
// Итератор становится недействительным в момент удаления его элемента.
// Разыменование End, сдвиг за End или перед Begin не определены.
type Iterator[T any] struct {
	n *node[T]
}

// Value значение элемента.
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Set замена значения элемента.
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

// Next итератор на следующий элемент.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Prev итератор на предыдущий элемент.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}
