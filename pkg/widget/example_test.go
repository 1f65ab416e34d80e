package widget_test

import (
	"fmt"

	"github.com/echotab/echotab/pkg/widget"
)

func ExampleRegistry_Manifest() {
	reg := widget.NewBuiltinRegistry()

	m, err := reg.Manifest("search")
	if err != nil {
		fmt.Println(err)
		return
	}
	w, h := m.ClampSize(20, 3)
	fmt.Println(m.Name, m.DefaultSize.W, m.DefaultSize.H)
	fmt.Println(w, h)
	// Output:
	// Search 5 1
	// 10 2
}
