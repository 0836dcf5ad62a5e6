package resolve

import (
	"golang.org/x/text/cases"

	"github.com/doublevil/memkit/mem/pointerpath"
)

// Normalize case-folds a module name for comparison. Windows treats module
// names case-insensitively, so "KERNEL32.DLL" and "kernel32.dll" are the
// same module.
func Normalize(name string) string {
	return cases.Fold().String(name)
}

// Table is an in-memory, case-insensitive ModuleResolver. It suits
// snapshots of a target's module list produced by enumeration code outside
// this library, and test fixtures.
type Table struct {
	bases map[string]uint64
}

// NewTable builds a resolver from module names and their load addresses.
// Lookups ignore case; when two names fold to the same key the last one
// wins.
func NewTable(modules map[string]uint64) *Table {
	t := &Table{bases: make(map[string]uint64, len(modules))}
	for name, base := range modules {
		t.bases[Normalize(name)] = base
	}
	return t
}

// ResolveModuleBase implements pointerpath.ModuleResolver.
func (t *Table) ResolveModuleBase(name string) (uint64, bool) {
	base, ok := t.bases[Normalize(name)]
	return base, ok
}

// CaseInsensitive wraps a resolver so lookups are retried with the
// case-folded name when the verbatim name resolves to nothing. Resolvers
// that are already case-insensitive are unaffected.
func CaseInsensitive(inner pointerpath.ModuleResolver) pointerpath.ModuleResolver {
	return pointerpath.ModuleResolverFunc(func(name string) (uint64, bool) {
		if base, ok := inner.ResolveModuleBase(name); ok {
			return base, true
		}
		folded := Normalize(name)
		if folded == name {
			return 0, false
		}
		return inner.ResolveModuleBase(folded)
	})
}

var _ pointerpath.ModuleResolver = (*Table)(nil)
