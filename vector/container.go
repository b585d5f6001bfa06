package vector

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Container представление массива в виде containers.Container.
func (v *Vector[T]) Container() containers.Container {
	return containerView[T]{v: v}
}

type containerView[T any] struct {
	v *Vector[T]
}

func (c containerView[T]) Empty() bool {
	return c.v.Empty()
}

func (c containerView[T]) Size() int {
	return c.v.Len()
}

func (c containerView[T]) Clear() {
	c.v.Clear()
}

func (c containerView[T]) Values() []interface{} {
	res := make([]interface{}, c.v.size)
	for i, value := range c.v.data[:c.v.size] {
		res[i] = value
	}

	return res
}

func (c containerView[T]) String() string {
	var b strings.Builder
	b.WriteString("Vector\n")
	for i, value := range c.v.data[:c.v.size] {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprint(&b, value)
	}

	return b.String()
}

var _ containers.Container = containerView[int]{}
