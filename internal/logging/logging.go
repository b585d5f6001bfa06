package logging

//go:generate mockgen -source=logging.go -destination=../mocks/logging_mock.go -package=mocks -mock_names ListLogger=ListLoggerMock,VectorLogger=VectorLoggerMock

// ListLogger абстракция логирования событий списка.
// Реализация логирования должна делаться пользователями библиотеки.
type ListLogger interface {
	// SelfSpliceIgnored попытка перенести элементы списка в самого себя.
	// Операция игнорируется, size – длина списка.
	SelfSpliceIgnored(size int)
	// SelfMergeIgnored попытка слить список с самим собой.
	SelfMergeIgnored(size int)
}

// VectorLogger абстракция логирования событий динамического массива.
type VectorLogger interface {
	// Relocated перенос size элементов из буфера ёмкостью from
	// в новый буфер ёмкостью to.
	Relocated(from, to, size int)
}

// Nop логгер ничего не делающий.
type Nop struct{}

// SelfSpliceIgnored для реализации ListLogger.
func (Nop) SelfSpliceIgnored(int) {}

// SelfMergeIgnored для реализации ListLogger.
func (Nop) SelfMergeIgnored(int) {}

// Relocated для реализации VectorLogger.
func (Nop) Relocated(int, int, int) {}

var (
	_ ListLogger   = Nop{}
	_ VectorLogger = Nop{}
)
