package pointerpath

import (
	"math"
	"math/big"
	"strings"
	"unicode"
)

const (
	segmentSeparator = ','
	nameQuote        = '"'
	opPlus           = '+'
	opMinus          = '-'
)

// maxUint64 is the 64-bit magnitude ceiling for any folded value.
var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// IsValid reports whether expr is a well-formed pointer-path expression.
func IsValid(expr string) bool {
	_, ok := parse(expr)
	return ok
}

// TryParse parses expr into a Path. The second result is false when the
// expression is malformed.
func TryParse(expr string) (*Path, bool) {
	return parse(expr)
}

// Parse parses expr into a Path, failing with a ParseError (wrapping
// ErrInvalidExpression) on malformed input. Malformed input is reported
// uniformly; the error does not distinguish syntax from range defects.
func Parse(expr string) (*Path, error) {
	p, ok := parse(expr)
	if !ok {
		return nil, &ParseError{Expression: expr}
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input. Use it for
// expressions known at compile time, in the manner of regexp.MustCompile.
func MustParse(expr string) *Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func parse(expr string) (*Path, bool) {
	segments, ok := splitSegments(expr)
	if !ok || len(segments) == 0 {
		return nil, false
	}

	moduleName, baseExpr, ok := splitModuleName(strings.TrimSpace(segments[0]))
	if !ok {
		return nil, false
	}

	// A module-anchored offset expression is either absent or opens with an
	// operator; "mod"10 is not a path.
	if moduleName != "" {
		if s := stripSpace(baseExpr); s != "" && s[0] != opPlus && s[0] != opMinus {
			return nil, false
		}
	}

	// The base folds like any segment, except a bare base (no module) may
	// not open with a minus and must not net negative once folded. Only a
	// module-anchored base may omit the offset expression entirely.
	base, ok := foldSegment(baseExpr, moduleName != "", moduleName != "")
	if !ok {
		return nil, false
	}
	if base.Sign() < 0 || base.CmpAbs(maxUint64) > 0 {
		return nil, false
	}

	p := &Path{
		Expression:    expr,
		ModuleName:    moduleName,
		BaseOffset:    base.Uint64(),
		Strictly64Bit: base.Uint64() > math.MaxUint32,
	}

	for _, seg := range segments[1:] {
		folded, ok := foldSegment(seg, true, false)
		if !ok || folded.CmpAbs(maxUint64) > 0 {
			return nil, false
		}
		off := NewOffset(new(big.Int).Abs(folded).Uint64(), folded.Sign() < 0)
		if off.Exceeds32Bits() {
			p.Strictly64Bit = true
		}
		p.PointerOffsets = append(p.PointerOffsets, off)
	}

	return p, true
}

// splitSegments splits expr on commas outside quotes. An unterminated quote
// makes the whole expression invalid.
func splitSegments(expr string) ([]string, bool) {
	var segments []string
	var inQuotes bool
	start := 0
	for i, r := range expr {
		switch r {
		case nameQuote:
			inQuotes = !inQuotes
		case segmentSeparator:
			if !inQuotes {
				segments = append(segments, expr[start:i])
				start = i + 1
			}
		}
	}
	if inQuotes {
		return nil, false
	}
	return append(segments, expr[start:]), true
}

// splitModuleName detects an optional leading module name in the first
// segment and returns the name (empty when absent) and the remaining
// numeric expression.
//
// A quoted name is taken verbatim between the quotes. An unquoted leading
// token is a module name only when it cannot be read as a hexadecimal
// number; a token like "cafe" is a number, "game.exe" is a module.
func splitModuleName(segment string) (string, string, bool) {
	if segment == "" {
		return "", "", false
	}

	if segment[0] == nameQuote {
		closing := strings.IndexByte(segment[1:], nameQuote)
		if closing < 0 {
			return "", "", false
		}
		name := segment[1 : 1+closing]
		if name == "" || strings.ContainsRune(name, segmentSeparator) {
			return "", "", false
		}
		return name, segment[closing+2:], true
	}

	// Cut the leading token at the first operator.
	end := strings.IndexAny(segment, "+-")
	token := segment
	rest := ""
	if end >= 0 {
		token = segment[:end]
		rest = segment[end:]
	}
	token = strings.TrimSpace(token)

	if token == "" || isHexNumber(token) {
		// Pure numeric base; the whole segment is the expression.
		return "", segment, true
	}
	if !isBareModuleName(token) {
		return "", "", false
	}
	return token, rest, true
}

// foldSegment folds a chain of +/- hexadecimal terms into one signed value.
// allowLeadingMinus is false for a bare base segment, which may not open
// with a minus. allowEmpty is true only for a module-anchored base, which
// may omit the offset expression; an empty pointer-offset segment (a
// trailing comma) is always invalid. Each term must individually fit 64
// bits; the running fold is unbounded and range-checked by the caller once
// complete.
func foldSegment(segment string, allowLeadingMinus, allowEmpty bool) (*big.Int, bool) {
	s := stripSpace(segment)
	sum := new(big.Int)
	if s == "" {
		if allowEmpty {
			return sum, true
		}
		return nil, false
	}

	i := 0
	first := true
	for i < len(s) {
		negative := false
		switch s[i] {
		case opPlus:
			i++
		case opMinus:
			if first && !allowLeadingMinus {
				return nil, false
			}
			negative = true
			i++
		default:
			if !first {
				return nil, false
			}
		}

		start := i
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		if i == start {
			// Missing number: trailing operator, doubled operator, or a
			// stray non-numeric token.
			return nil, false
		}

		term, ok := new(big.Int).SetString(s[start:i], 16)
		if !ok || term.CmpAbs(maxUint64) > 0 {
			return nil, false
		}
		if negative {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		first = false
	}
	return sum, true
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isHexNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// isBareModuleName reports whether token is an identifier-like module name:
// letters, digits, dots, underscores, no interior whitespace.
func isBareModuleName(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' {
			return false
		}
	}
	return token != ""
}
