package dllist

import "github.com/sirkon/errors"

// New конструктор пустого двусвязного списка.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{}
	l.init()
	for _, opt := range opts {
		opt(&l.cfg, optionRestriction{})
	}

	return l
}

// List двусвязный список с двумя сторожевыми узлами head и tail.
// Значения в сторожевых узлах не хранятся, первый элемент списка
// это head.next, последний – tail.prev.
//
// Нулевое значение является пустым списком готовым к использованию.
// Список нельзя копировать после начала использования.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	head node[T]
	tail node[T]
	size int

	cfg config
}

func (l *List[T]) init() {
	l.head.next = &l.tail
	l.tail.prev = &l.head
}

func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.init()
	}
}

// Len число элементов списка.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка, что список пуст.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Begin итератор указывающий на первый элемент списка. Для пустого
// списка совпадает с End.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.head.next}
}

// End итератор указывающий за последний элемент списка.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.tail}
}

// PushBack добавление нового значения в конец списка.
func (l *List[T]) PushBack(v T) Iterator[T] {
	l.lazyInit()
	return l.insertBefore(v, &l.tail)
}

// PushFront добавление нового значения в начало списка.
func (l *List[T]) PushFront(v T) Iterator[T] {
	l.lazyInit()
	return l.insertBefore(v, l.head.next)
}

// PopBack удаление последнего элемента. Ничего не делает на пустом списке.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		return
	}

	l.remove(l.tail.prev)
}

// PopFront удаление первого элемента. Ничего не делает на пустом списке.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}

	l.remove(l.head.next)
}

// InsertFront то же самое, что и PushFront.
func (l *List[T]) InsertFront(v T) Iterator[T] {
	return l.PushFront(v)
}

// Insert вставка значения перед pos. Вставка перед End добавляет значение
// в конец списка. Возвращает итератор на вставленный элемент.
func (l *List[T]) Insert(v T, pos Iterator[T]) Iterator[T] {
	return l.insertBefore(v, pos.n)
}

// EraseFront то же самое, что и PopFront.
func (l *List[T]) EraseFront() {
	l.PopFront()
}

// Erase удаление элемента на который указывает pos. Возвращает итератор
// на следующий за удалённым элемент. Удаление End ничего не делает.
// Все итераторы кроме указывающих на удалённый элемент остаются
// действительными.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.n == &l.tail {
		return pos
	}

	next := pos.n.next
	l.remove(pos.n)
	return Iterator[T]{n: next}
}

// Front первый элемент списка.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrOutOfRange, "get front element")
	}

	return l.head.next.value, nil
}

// Back последний элемент списка.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrOutOfRange, "get back element")
	}

	return l.tail.prev.value, nil
}

// At значение элемента на который указывает pos. pos не должен быть End.
func (l *List[T]) At(pos Iterator[T]) T {
	return pos.n.value
}

// Clear удаление всех элементов списка.
func (l *List[T]) Clear() {
	l.lazyInit()
	for l.size > 0 {
		l.remove(l.head.next)
	}
}

// Values возвращает копию значений списка в порядке их следования.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

// Each обход значений списка от начала к концу пока f возвращает true.
func (l *List[T]) Each(f func(v T) bool) {
	if l.size == 0 {
		return
	}

	for n := l.head.next; n != &l.tail; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

func (l *List[T]) insertBefore(v T, at *node[T]) Iterator[T] {
	n := &node[T]{value: v}
	n.link(at.prev, at)
	l.size++

	return Iterator[T]{n: n}
}

func (l *List[T]) remove(n *node[T]) {
	n.unlink()
	l.size--
}

// detach отцепляет все элементы от сторожевых узлов оставляя список пустым.
// Возвращает первый и последний узлы цепочки, связи между узлами сохраняются.
func (l *List[T]) detach() (first, last *node[T], size int) {
	first, last, size = l.head.next, l.tail.prev, l.size
	l.init()
	l.size = 0
	return first, last, size
}
