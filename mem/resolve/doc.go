// Package resolve provides decorators for the module resolution
// collaborator consumed by the pointer-path evaluator.
//
// CaseInsensitive makes lookups ignore case the way Windows module names
// do, and Cached memoizes resolution results behind an LRU so repeated
// evaluations of the same paths do not keep querying the target process.
// Both wrap any pointerpath.ModuleResolver and compose:
//
//	r := resolve.Cached(resolve.CaseInsensitive(target), 64)
package resolve
