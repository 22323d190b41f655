package quicksort_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/order"
	"github.com/katalvlaran/lvlalgo/quicksort"
)

// ExampleSort sorts in place with the natural ordering.
func ExampleSort() {
	s := []int{5, 2, 8, 2, 9, 1}

	quicksort.Sort(s, order.Natural[int]())

	fmt.Println(s)
	// Output:
	// [1 2 2 5 8 9]
}

// ExampleLazySorter fetches order statistics without a full sort.
func ExampleLazySorter() {
	s := []int{42, 7, 99, 13, 64, 1}

	ls := quicksort.NewLazySorter(s, order.Natural[int]())

	smallest, _ := ls.At(0)
	median, _ := ls.At(2)

	fmt.Println(smallest, median)
	// Output:
	// 1 13
}

// ExampleStableSort keeps equal elements in their original order.
func ExampleStableSort() {
	words := []string{"bb", "a", "cc", "d"}

	byLen := order.By(func(s string) int { return len(s) })

	fmt.Println(quicksort.StableSort(words, byLen))
	// Output:
	// [a d bb cc]
}
