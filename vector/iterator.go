package vector

// Begin итератор на первый элемент.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End итератор за последний элемент.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.size}
}

// Iterator двунаправленный итератор массива. Итераторы сравниваются
// оператором ==.
//
// Разыменование End, сдвиг за End или перед Begin не определены.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

// Value значение элемента.
func (it Iterator[T]) Value() T {
	return it.v.data[it.pos]
}

// Set замена значения элемента.
func (it Iterator[T]) Set(value T) {
	it.v.data[it.pos] = value
}

// Index позиция элемента в массиве.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Next итератор на следующий элемент.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev итератор на предыдущий элемент.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}
