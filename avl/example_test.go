package avl_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlds/avl"
)

// ExampleTree_Insert demonstrates the classical Right-Right rebalancing:
// three ascending inserts end with the middle key at the root.
func ExampleTree_Insert() {
	t := avl.New[int]()
	for _, k := range []int{10, 20, 30} {
		if err := t.Insert(k); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println(t.LevelOrder())
	fmt.Println(t.Height())
	// Output:
	// [20 10 30]
	// 2
}

// ExampleTree_InOrder shows that in-order traversal yields the keys in
// ascending sorted order regardless of insertion order.
func ExampleTree_InOrder() {
	t := avl.New[string]()
	for _, w := range []string{"delta", "alpha", "charlie", "bravo"} {
		_ = t.Insert(w)
	}

	fmt.Println(t.InOrder())
	// Output:
	// [alpha bravo charlie delta]
}

// ExampleTree_Dump renders the tree shape with cached heights, the form
// the console demo prints for interactive inspection.
func ExampleTree_Dump() {
	t := avl.New[int]()
	for _, k := range []int{20, 10, 30} {
		_ = t.Insert(k)
	}

	t.Dump(os.Stdout)
	// Output:
	// └── 20 (h:2)
	//     ├── 10 (h:1)
	//     └── 30 (h:1)
}
