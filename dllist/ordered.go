package dllist

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Sort устойчивая сортировка списка по возрастанию.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(less[T])
}

// Merge слияние упорядоченных по возрастанию списков, см. MergeFunc.
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, less[T])
}

// Remove удаление всех элементов равных v.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(x T) bool {
		return x == v
	})
}

// Unique удаление подряд идущих одинаковых элементов.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

// FromComparator порядок на основе компаратора gods.
// Компаратор должен уметь работать со значениями типа T.
func FromComparator[T any](cmp utils.Comparator) Less[T] {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}

func less[T constraints.Ordered](a, b T) bool {
	return a < b
}
