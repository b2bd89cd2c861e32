package eclipse

import (
	"sort"
	"testing"
)

func TestImportOrderDotSortsFirst(t *testing.T) {
	// '.' must sort below every other character, so the dotted name wins
	// even though '.' > '-' in plain byte order.
	if !ImportOrderLess("com.example", "com-example") {
		t.Error("dotted segment should sort before dashed segment")
	}
}

func TestImportOrderExtensionBeforeBareName(t *testing.T) {
	// The dialog lists com.example.api before com.example itself.
	if !ImportOrderLess("com.example.api", "com.example") {
		t.Error("dotted extension should sort before the bare prefix")
	}
}

func TestImportOrderSorting(t *testing.T) {
	paths := []string{
		"com.example.api",
		"com.examplezz",
		"com.example",
		"com.example.core",
	}
	sort.Slice(paths, func(i, j int) bool { return ImportOrderLess(paths[i], paths[j]) })

	want := []string{
		"com.example.api",
		"com.example.core",
		"com.example",
		"com.examplezz",
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("order = %v, want %v", paths, want)
		}
	}
}
