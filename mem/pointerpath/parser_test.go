package pointerpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_BareNumericBase tests a path with no module name and several
// pointer offsets.
func TestParse_BareNumericBase(t *testing.T) {
	p, err := Parse("1F016644,13,A0,0")
	require.NoError(t, err)

	assert.Empty(t, p.ModuleName)
	assert.False(t, p.HasModule())
	assert.Equal(t, uint64(0x1F016644), p.BaseOffset)
	require.Len(t, p.PointerOffsets, 3)
	assert.Equal(t, NewOffset(0x13, false), p.PointerOffsets[0])
	assert.Equal(t, NewOffset(0xA0, false), p.PointerOffsets[1])
	assert.Equal(t, NewOffset(0x0, false), p.PointerOffsets[2])
	assert.False(t, p.Strictly64Bit)
	assert.Equal(t, "1F016644,13,A0,0", p.String())
}

// TestParse_ModuleWithFoldedOffset tests folding of chained +/- terms into
// a single module offset.
func TestParse_ModuleWithFoldedOffset(t *testing.T) {
	p, err := Parse("mymoduleName.exe+6A-2C+8")
	require.NoError(t, err)

	assert.Equal(t, "mymoduleName.exe", p.ModuleName)
	assert.Equal(t, uint64(0x46), p.BaseOffset)
	assert.Empty(t, p.PointerOffsets)
}

// TestParse_QuotedModuleName tests quote stripping and names that are not
// identifier-like.
func TestParse_QuotedModuleName(t *testing.T) {
	p, err := Parse(`"my weird module-name.dll"+10,8`)
	require.NoError(t, err)

	assert.Equal(t, "my weird module-name.dll", p.ModuleName)
	assert.Equal(t, uint64(0x10), p.BaseOffset)
	require.Len(t, p.PointerOffsets, 1)
	assert.Equal(t, NewOffset(0x8, false), p.PointerOffsets[0])
}

// TestParse_ModuleWithoutOffset tests that a lone module name folds to a
// zero offset.
func TestParse_ModuleWithoutOffset(t *testing.T) {
	p, err := Parse("game.exe")
	require.NoError(t, err)
	assert.Equal(t, "game.exe", p.ModuleName)
	assert.Zero(t, p.BaseOffset)
	assert.Empty(t, p.PointerOffsets)
}

// TestParse_NegativeOffsets tests negative folded pointer offsets and a
// momentarily negative partial sum that nets positive.
func TestParse_NegativeOffsets(t *testing.T) {
	p, err := Parse("game.exe+1A2B,10,-8")
	require.NoError(t, err)
	require.Len(t, p.PointerOffsets, 2)
	assert.Equal(t, NewOffset(0x10, false), p.PointerOffsets[0])
	assert.Equal(t, NewOffset(0x8, true), p.PointerOffsets[1])

	// -2C+6A nets +0x3E: intermediate negativity is fine for a module
	// offset as long as the fold ends non-negative.
	p, err = Parse("game.exe-2C+6A")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3E), p.BaseOffset)
}

// TestParse_WhitespaceInsignificant tests that spaces outside quotes are
// ignored.
func TestParse_WhitespaceInsignificant(t *testing.T) {
	p, err := Parse(" game.exe + 1A2B , 10 , -8 ")
	require.NoError(t, err)
	assert.Equal(t, "game.exe", p.ModuleName)
	assert.Equal(t, uint64(0x1A2B), p.BaseOffset)
	require.Len(t, p.PointerOffsets, 2)
}

// TestParse_AmbiguousLeadingToken pins down the module-versus-number rule:
// a leading token made only of hex digits is a number, anything else that
// is identifier-like is a module.
func TestParse_AmbiguousLeadingToken(t *testing.T) {
	p, err := Parse("cafe,10")
	require.NoError(t, err)
	assert.Empty(t, p.ModuleName)
	assert.Equal(t, uint64(0xCAFE), p.BaseOffset)

	p, err = Parse("cafe.exe,10")
	require.NoError(t, err)
	assert.Equal(t, "cafe.exe", p.ModuleName)
	assert.Zero(t, p.BaseOffset)

	// Prefixes are not part of the grammar, so "0x1000" is not a number;
	// it reads as an identifier-like module name.
	p, err = Parse("0x1000")
	require.NoError(t, err)
	assert.Equal(t, "0x1000", p.ModuleName)
	assert.Zero(t, p.BaseOffset)
}

// TestParse_Strictly64Bit tests the 32-bit ceiling marking on base and
// offsets, including negative offsets with large magnitude.
func TestParse_Strictly64Bit(t *testing.T) {
	p, err := Parse("1F016644,13")
	require.NoError(t, err)
	assert.False(t, p.Strictly64Bit)

	p, err = Parse("100000000")
	require.NoError(t, err)
	assert.True(t, p.Strictly64Bit)

	p, err = Parse("1000,1FFFFFFFF")
	require.NoError(t, err)
	assert.True(t, p.Strictly64Bit)

	p, err = Parse("1000,-1FFFFFFFF")
	require.NoError(t, err)
	assert.True(t, p.Strictly64Bit)

	// Exactly the 32-bit ceiling is still a 32-bit value.
	p, err = Parse("FFFFFFFF")
	require.NoError(t, err)
	assert.False(t, p.Strictly64Bit)
}

// TestParse_InvalidExpressions tests the rejection matrix of the grammar.
func TestParse_InvalidExpressions(t *testing.T) {
	invalid := []string{
		"",
		"-A0",                 // bare base cannot be negative
		"game.exe-10",         // module offset nets negative
		"1000,",               // trailing comma
		",1000",               // empty first segment
		"1000,,10",            // empty middle segment
		"1000,10+",            // trailing operator
		"1000,10++8",          // doubled operator
		"1000,10+-8",          // sign immediately after sign
		"game.exe+",           // trailing operator after module
		"game.exe 10",         // missing operator between module and number
		`"mod"10`,             // missing operator after quoted module
		`"unterminated+10`,    // unterminated quote
		`""+10`,               // empty quoted module name
		"mod*ule.exe+10",      // non-identifier bare module name
		"1000,XYZ",            // non-numeric token
		"1000,0x10",           // prefixed token where a number is expected
		"10000000000000000",   // term magnitude above the 64-bit ceiling
		"1000,-10000000000000000",
		"FFFFFFFFFFFFFFFF+1",  // fold overflows the 64-bit ceiling
	}

	for _, expr := range invalid {
		t.Run(expr, func(t *testing.T) {
			assert.False(t, IsValid(expr), "expression %q must be invalid", expr)

			_, ok := TryParse(expr)
			assert.False(t, ok)

			_, err := Parse(expr)
			require.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}

// TestParse_DeterministicAndIdempotent tests that parsing the same
// expression twice yields structurally equal paths, and that the preserved
// expression round-trips through Parse.
func TestParse_DeterministicAndIdempotent(t *testing.T) {
	exprs := []string{
		"1F016644,13,A0,0",
		"mymoduleName.exe+6A-2C+8",
		`"quoted name.dll"+4,18,-20`,
		"game.exe",
		"FFFFFFFF,0",
	}

	for _, expr := range exprs {
		first, err := Parse(expr)
		require.NoError(t, err)
		second, err := Parse(expr)
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "two parses of %q must match", expr)

		// Round-trip: the canonical expression is the verbatim input.
		again, err := Parse(first.String())
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

// TestMustParse tests the panicking strict constructor.
func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("game.exe+10") })
	assert.Panics(t, func() { MustParse("-A0") })
}

// TestOffset_Apply tests overflow-checked offset application.
func TestOffset_Apply(t *testing.T) {
	sum, ok := NewOffset(0x10, false).Apply(0x1000)
	require.True(t, ok)
	assert.Equal(t, uint64(0x1010), sum)

	sum, ok = NewOffset(0x10, true).Apply(0x1000)
	require.True(t, ok)
	assert.Equal(t, uint64(0xFF0), sum)

	// Underflow below zero.
	_, ok = NewOffset(0x1001, true).Apply(0x1000)
	assert.False(t, ok)

	// Overflow past the 64-bit space.
	_, ok = NewOffset(2, false).Apply(^uint64(0) - 1)
	assert.False(t, ok)

	// Negative zero normalizes to positive zero.
	assert.Equal(t, NewOffset(0, false), NewOffset(0, true))
}
