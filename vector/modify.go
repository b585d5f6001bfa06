package vector

// PushBack добавление элемента в конец массива. При заполненном буфере
// ёмкость удваивается.
func (v *Vector[T]) PushBack(value T) {
	if v.size == len(v.data) {
		v.grow()
	}

	v.data[v.size] = value
	v.size++
}

// Reserve увеличение ёмкости до capacity. Ничего не делает если ёмкость
// уже не меньше.
func (v *Vector[T]) Reserve(capacity int) {
	if capacity <= len(v.data) {
		return
	}

	v.relocate(capacity)
}

// Insert вставка элемента на позицию index со сдвигом последующих вправо.
// index должен лежать в [0, Len()].
func (v *Vector[T]) Insert(index int, value T) error {
	if err := v.checkIndex("insert element", index, v.size+1); err != nil {
		return err
	}

	if v.size == len(v.data) {
		v.grow()
	}

	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = value
	v.size++
	return nil
}

// Erase удаление элемента на позиции index со сдвигом последующих влево.
func (v *Vector[T]) Erase(index int) error {
	if err := v.checkIndex("erase element", index, v.size); err != nil {
		return err
	}

	copy(v.data[index:v.size-1], v.data[index+1:v.size])
	v.size--

	// Освободившаяся позиция не должна держать значение.
	var zero T
	v.data[v.size] = zero
	return nil
}

// Clear удаление всех элементов. Ёмкость не меняется.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.data[i] = zero
	}
	v.size = 0
}

func (v *Vector[T]) grow() {
	capacity := len(v.data) * 2
	if capacity == 0 {
		capacity = 1
	}

	v.relocate(capacity)
}

// relocate перенос элементов в новый буфер данной ёмкости. Старый буфер
// отпускается только после полного заполнения нового.
func (v *Vector[T]) relocate(capacity int) {
	data := make([]T, capacity)
	copy(data, v.data[:v.size])

	from := len(v.data)
	v.data = data
	v.cfg.log().Relocated(from, capacity, v.size)
}
