package pointerpath

// Path is a parsed pointer-path expression: an optional module anchor, a
// folded base offset, and the folded pointer offsets to follow.
//
// Paths are immutable once built and safe to share; every instance is
// independent of every other.
type Path struct {
	// Expression is the input string, preserved verbatim.
	Expression string

	// ModuleName anchors the path to a module's load address. Empty means
	// the path starts at the bare BaseOffset instead.
	ModuleName string

	// BaseOffset is the folded offset from the module base, or the absolute
	// base address when ModuleName is empty. The grammar guarantees it is
	// never negative after folding.
	BaseOffset uint64

	// PointerOffsets are the folded offsets applied after each pointer
	// dereference, in path order.
	PointerOffsets []Offset

	// Strictly64Bit is set when any folded value in the path exceeds the
	// 32-bit ceiling, making the path unresolvable on a 32-bit target.
	Strictly64Bit bool
}

// String returns the expression the path was parsed from, verbatim.
func (p *Path) String() string { return p.Expression }

// HasModule reports whether the path is anchored to a module.
func (p *Path) HasModule() bool { return p.ModuleName != "" }

// Equal reports structural equality of two paths, expression included.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Expression != other.Expression ||
		p.ModuleName != other.ModuleName ||
		p.BaseOffset != other.BaseOffset ||
		p.Strictly64Bit != other.Strictly64Bit ||
		len(p.PointerOffsets) != len(other.PointerOffsets) {
		return false
	}
	for i := range p.PointerOffsets {
		if p.PointerOffsets[i] != other.PointerOffsets[i] {
			return false
		}
	}
	return true
}
