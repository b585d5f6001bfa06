package vector

import "github.com/sirkon/errors"

// New конструктор пустого массива. Память не выделяется.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.apply(opts)
	return v
}

// NewWithCapacity конструктор пустого массива с буфером на capacity элементов.
// Отрицательная ёмкость считается нулевой.
func NewWithCapacity[T any](capacity int, opts ...Option) *Vector[T] {
	v := &Vector[T]{
		data: make([]T, nonNegative(capacity)),
	}
	v.apply(opts)
	return v
}

// NewFilled конструктор массива из count копий value. Ёмкость равна count,
// отрицательное count даёт пустой массив.
func NewFilled[T any](count int, value T, opts ...Option) *Vector[T] {
	count = nonNegative(count)
	v := &Vector[T]{
		data: make([]T, count),
		size: count,
	}
	for i := range v.data {
		v.data[i] = value
	}
	v.apply(opts)
	return v
}

// Vector динамический массив с непрерывным буфером. Живые элементы
// занимают первые Len() позиций буфера, остальные позиции до Cap() хранят
// нулевые значения.
//
// Нулевое значение является пустым массивом готовым к использованию.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Vector[T any] struct {
	data []T
	size int

	cfg config
}

func (v *Vector[T]) apply(opts []Option) {
	for _, opt := range opts {
		opt(&v.cfg, optionRestriction{})
	}
}

// Clone создание копии массива с той же ёмкостью. Элементы копируются
// присваиванием.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		data: make([]T, len(v.data)),
		size: v.size,
		cfg:  v.cfg,
	}
	copy(c.data, v.data[:v.size])
	return c
}

// Assign замена содержимого массива копией other.
// Присваивание самому себе ничего не делает.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}

	data := make([]T, len(other.data))
	copy(data, other.data[:other.size])
	v.data = data
	v.size = other.size
}

// Len число элементов.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap ёмкость буфера.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty проверка, что массив пуст.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get элемент с данным индексом без проверки выхода за пределы массива.
func (v *Vector[T]) Get(index int) T {
	return v.data[index]
}

// Set замена элемента с данным индексом без проверки выхода за пределы массива.
func (v *Vector[T]) Set(index int, value T) {
	v.data[index] = value
}

// At элемент с данным индексом.
func (v *Vector[T]) At(index int) (T, error) {
	if err := v.checkIndex("get element", index, v.size); err != nil {
		var zero T
		return zero, err
	}

	return v.data[index], nil
}

// Values копия элементов массива.
func (v *Vector[T]) Values() []T {
	res := make([]T, v.size)
	copy(res, v.data[:v.size])
	return res
}

// checkIndex проверка попадания индекса в [0, limit).
func (v *Vector[T]) checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return errors.Wrap(ErrOutOfRange, op).Int("index", index).Int("size", v.size)
	}

	return nil
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
