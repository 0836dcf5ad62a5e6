// Package pointerpath implements the pointer-path expression language used
// to describe addresses inside a target process, and the evaluator that
// resolves such a path against a live target.
//
// # Expressions
//
// A pointer path is a comma-separated list of segments. The first segment is
// either a bare hexadecimal base address or a module name followed by an
// offset expression; every later segment is a pointer offset:
//
//	1F016644,13,A0,0
//	game.exe+1A2B,10,-8
//	"weird module name.dll"+4,18
//
// Numbers are hexadecimal with no prefix. Within a segment, terms may be
// chained with + and - and are folded into a single signed value before
// validation. Whitespace is insignificant outside quotes. A path whose
// folded base nets negative is invalid, and any folded value above the
// 32-bit ceiling marks the whole path as requiring 64-bit addressing.
//
// # Entry Points
//
// Three parsing shapes are offered: IsValid reports validity without
// building anything, TryParse returns (path, ok), and Parse returns the
// path or an error. MustParse panics on invalid input, for expressions
// known at compile time.
//
// # Evaluation
//
// Evaluator walks a parsed path against two collaborators: a ModuleResolver
// that maps module names to load addresses and a MemoryReader that reads
// pointer-sized values from the target. Each pointer offset triggers one
// read of the current address; the value read, plus the offset, becomes the
// next address. The final address is never dereferenced — the last offset
// designates a field inside the last-resolved object:
//
//	p := pointerpath.MustParse("game.exe+10,8")
//	ev := pointerpath.Evaluator{Resolver: mods, Reader: memory, Bitness: mem.Bits64}
//	addr, err := ev.Evaluate(p)
//
// Failures are typed (ModuleNotFoundError, MemoryReadError, BitnessError)
// and matchable with errors.Is against the package sentinels.
package pointerpath
