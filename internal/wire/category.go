package wire

import "fmt"

// Category selects the wire-format variant used to encode a call.
// Values match the protocol registry of the upstream service.
type Category int

const (
	CategoryBinary       Category = 3
	CategoryCompact      Category = 4
	CategoryDenseCompact Category = 5
)

// DefaultCategory is used when a call does not pick one explicitly.
const DefaultCategory = CategoryBinary

// Valid reports whether c names a known wire-format variant.
func (c Category) Valid() bool {
	switch c {
	case CategoryBinary, CategoryCompact, CategoryDenseCompact:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	switch c {
	case CategoryBinary:
		return "binary"
	case CategoryCompact:
		return "compact"
	case CategoryDenseCompact:
		return "dense-compact"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}
