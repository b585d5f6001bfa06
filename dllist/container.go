package dllist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Container представление списка в виде containers.Container.
func (l *List[T]) Container() containers.Container {
	return containerView[T]{l: l}
}

type containerView[T any] struct {
	l *List[T]
}

func (c containerView[T]) Empty() bool {
	return c.l.Empty()
}

func (c containerView[T]) Size() int {
	return c.l.Len()
}

func (c containerView[T]) Clear() {
	c.l.Clear()
}

func (c containerView[T]) Values() []interface{} {
	res := make([]interface{}, 0, c.l.Len())
	c.l.Each(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

func (c containerView[T]) String() string {
	var b strings.Builder
	b.WriteString("DoublyLinkedList\n")
	var i int
	c.l.Each(func(v T) bool {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprint(&b, v)
		i++
		return true
	})

	return b.String()
}

var _ containers.Container = containerView[int]{}
