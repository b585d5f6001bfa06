package dllist_test

import (
	"fmt"

	"github.com/sirkon/linear/dllist"
)

func ExampleList() {
	l := dllist.New[int]()
	for _, v := range []int{3, 1, 3, 2, 1} {
		l.PushBack(v)
	}

	dllist.Sort(l)
	dllist.Unique(l)
	fmt.Println(l.Values())

	other := dllist.New[int]()
	other.PushBack(0)
	other.PushBack(4)
	dllist.Merge(l, other)
	fmt.Println(l.Values(), other.Len())

	l.Reverse()
	for it := l.Begin(); it != l.End(); it = it.Next() {
		if it != l.Begin() {
			fmt.Print(" ")
		}
		fmt.Print(it.Value())
	}
	fmt.Println()

	if _, err := dllist.New[int]().Front(); err != nil {
		fmt.Println(dllist.IsOutOfRange(err))
	}

	// output:
	// [1 2 3]
	// [0 1 2 3 4] 0
	// 4 3 2 1 0
	// true
}
