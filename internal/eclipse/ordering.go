package eclipse

import "strings"

// ImportOrderLess compares two paths the way Eclipse's import-existing-projects
// dialog orders them: '.' sorts below every other character, so dotted
// extensions of a name come before the bare name itself. Implemented by
// mapping '.' to 0x00 and terminating each path with 0x01 before comparing.
// This is a pure output-order transform; the catalog never uses it.
func ImportOrderLess(a, b string) bool {
	return importOrderKey(a) < importOrderKey(b)
}

func importOrderKey(p string) string {
	return strings.ReplaceAll(p, ".", "\x00") + "\x01"
}
