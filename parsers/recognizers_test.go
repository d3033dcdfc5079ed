package parsers

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantOK  bool
		wantTxt string
	}{
		{"plain", "alpha rest", true, "alpha"},
		{"leading underscore", "_private", true, "_private"},
		{"alnum tail", "node42x", true, "node42x"},
		{"leading digit rejected", "42node", false, ""},
		{"leading separator skipped", "   alpha", true, "alpha"},
		{"empty input", "", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := &errorList{}
			_, id, ok := parseIdentifier(newCursor([]byte(tc.in)), errs)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantTxt, id.Text)
				assert.True(t, ReIdentifier.MatchString(id.Text))
			}
		})
	}
}

func TestParseName(t *testing.T) {
	errs := &errorList{}
	_, n, ok, err := parseName(newCursor([]byte("$alpha")), errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Global, n.Scope)
	assert.Equal(t, "alpha", n.Ident.Text)

	_, n2, ok2, err2 := parseName(newCursor([]byte("%beta")), errs)
	require.NoError(t, err2)
	require.True(t, ok2)
	assert.Equal(t, Local, n2.Scope)

	_, _, ok3, err3 := parseName(newCursor([]byte("plain")), errs)
	assert.False(t, ok3)
	assert.NoError(t, err3)
}

func TestParseNameHardFailsWithoutIdentifier(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseName(newCursor([]byte("$ ")), errs)
	assert.False(t, ok)
	require.Error(t, err)
}

func TestParsePrimitiveDataTypeScalar(t *testing.T) {
	errs := &errorList{}
	_, pt, width, ok, err := parsePrimitiveDataType(newCursor([]byte("float {")), errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Float, pt)
	assert.Equal(t, 0, width)
}

func TestParsePrimitiveDataTypeWithArray(t *testing.T) {
	errs := &errorList{}
	_, pt, width, ok, err := parsePrimitiveDataType(newCursor([]byte("float[3] {")), errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Float, pt)
	assert.Equal(t, 3, width)
}

func TestParsePrimitiveDataTypeRejectsZeroWidthArray(t *testing.T) {
	errs := &errorList{}
	_, _, _, ok, err := parsePrimitiveDataType(newCursor([]byte("float[0] {")), errs)
	assert.False(t, ok)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrMalformedLiteral, pe.Code)
}

func TestParsePrimitiveDataTypeSoftFailsOnUserIdentifier(t *testing.T) {
	errs := &errorList{}
	_, _, _, ok, err := parsePrimitiveDataType(newCursor([]byte("GeometryNode {")), errs)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestParsePrimitiveDataTypeMisspelledKeywordWithArrayIsHardError(t *testing.T) {
	errs := &errorList{}
	_, _, _, ok, err := parsePrimitiveDataType(newCursor([]byte("flot[3] {")), errs)
	assert.False(t, ok)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrUnknownType, pe.Code)
}

func TestParsePrimitiveDataTypeRejectsArrayOnVariableWidthType(t *testing.T) {
	for _, src := range []string{"string[3] {", "ref[2] {", "type[1] {"} {
		errs := &errorList{}
		_, _, _, ok, err := parsePrimitiveDataType(newCursor([]byte(src)), errs)
		assert.False(t, ok, src)
		require.Error(t, err, src)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ErrMalformedLiteral, pe.Code)
	}
}

func TestParseBooleanLiteral(t *testing.T) {
	errs := &errorList{}
	_, p, ok := parseBooleanLiteral(newCursor([]byte("true")), errs)
	require.True(t, ok)
	assert.True(t, p.Bool())

	_, p2, ok2 := parseBooleanLiteral(newCursor([]byte("false")), errs)
	require.True(t, ok2)
	assert.False(t, p2.Bool())

	_, _, ok3 := parseBooleanLiteral(newCursor([]byte("fallse")), errs)
	assert.False(t, ok3)
}

func TestParseIntegerLiteralDecimal(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseIntegerLiteral(newCursor([]byte("-42")), Int32, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(-42), p.Int64())
}

func TestParseIntegerLiteralHex(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseIntegerLiteral(newCursor([]byte("0xFF")), UInt8, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(255), p.UInt64())
}

func TestParseIntegerLiteralBinary(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseIntegerLiteral(newCursor([]byte("0b1010")), Int8, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(10), p.Int64())
}

func TestParseIntegerLiteralRejectsNegativeForUnsignedTarget(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseIntegerLiteral(newCursor([]byte("-5")), UInt32, errs)
	assert.False(t, ok)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrMalformedLiteral, pe.Code)
}

func TestParseIntegerLiteralOverflowIsHardError(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseIntegerLiteral(newCursor([]byte("300")), Int8, errs)
	assert.False(t, ok)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrMalformedLiteral, pe.Code)
}

func TestParseIntegerLiteralSoftFailsOnNonIntegerExpectedType(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseIntegerLiteral(newCursor([]byte("42")), Float, errs)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestParseFloatLiteralDecimal(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseFloatLiteral(newCursor([]byte("3.14159")), Double, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.14159, p.Float64(), 0.00001)
}

func TestParseFloatLiteralWithExponent(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseFloatLiteral(newCursor([]byte("1.5e3")), Float, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, float32(1500), p.Float32(), 0.01)
}

func TestParseStringLiteralWithEscapes(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseStringLiteral(newCursor([]byte(`"line1\nline2\ttab\x41"`)), errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "line1\nline2\ttabA", p.String())
}

// TestStringLiteralEscapesMatchRecognizedPattern checks that every escape
// decodeEscape actually accepts also matches ReEscapedChar, and that one it
// rejects does not.
func TestStringLiteralEscapesMatchRecognizedPattern(t *testing.T) {
	accepted := []string{`\\`, `\"`, `\n`, `\t`, `\r`, `\x41`}
	for _, esc := range accepted {
		assert.True(t, ReEscapedChar.MatchString(esc), "decodeEscape accepts %q but ReEscapedChar rejects it", esc)
	}
	assert.False(t, ReEscapedChar.MatchString(`\q`))

	errs := &errorList{}
	_, _, ok, err := parseStringLiteral(newCursor([]byte(`"bad \q escape"`)), errs)
	assert.False(t, ok)
	require.Error(t, err)
}

// TestFloatLiteralRoundTripsThroughCanonicalText checks the round-trip
// property: a float parsed from canonical decimal text, re-printed with the
// same canonical form, and reparsed yields the same value (and every
// canonical form along the way matches ReCanonicalFloat).
func TestFloatLiteralRoundTripsThroughCanonicalText(t *testing.T) {
	canonical := []string{"0", "1", "-1", "3.14159", "100", "1e+10", "-2.5e-07", "0.001"}
	for _, text := range canonical {
		t.Run(text, func(t *testing.T) {
			require.True(t, ReCanonicalFloat.MatchString(text), "fixture %q must itself match the canonical float pattern", text)

			errs := &errorList{}
			_, p, ok, err := parseFloatLiteral(newCursor([]byte(text)), Double, errs)
			require.NoError(t, err)
			require.True(t, ok)

			want, convErr := strconv.ParseFloat(text, 64)
			require.NoError(t, convErr)
			assert.Equal(t, want, p.Float64())

			printed := strconv.FormatFloat(p.Float64(), 'g', -1, 64)
			require.True(t, ReCanonicalFloat.MatchString(printed), "re-printed form %q must also match the canonical float pattern", printed)

			_, p2, ok2, err2 := parseFloatLiteral(newCursor([]byte(printed)), Double, errs)
			require.NoError(t, err2)
			require.True(t, ok2)
			assert.Equal(t, p.Float64(), p2.Float64(), "round trip through canonical text must preserve the value")
		})
	}
}

func TestParseStringLiteralUnterminatedIsHardError(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseStringLiteral(newCursor([]byte(`"never closed`)), errs)
	assert.False(t, ok)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrUnterminatedString, pe.Code)
	assert.True(t, pe.IsEOF)
}

func TestParseReference(t *testing.T) {
	errs := &errorList{}
	_, names, ok, err := parseReference(newCursor([]byte("ref {$alpha, %beta}")), errs)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, names, 2)
	assert.Equal(t, "$alpha", names[0].Text())
	assert.Equal(t, "%beta", names[1].Text())
}

func TestParseNameListAssumesOpenBraceAlreadyConsumed(t *testing.T) {
	errs := &errorList{}
	_, names, err := parseNameList(newCursor([]byte("$alpha, %beta}")), errs)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "$alpha", names[0].Text())
	assert.Equal(t, "%beta", names[1].Text())
}

func TestParseReferenceRejectsEmptyList(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseReference(newCursor([]byte("ref {}")), errs)
	assert.False(t, ok)
	require.Error(t, err)
}

func TestParseReferenceRejectsTrailingComma(t *testing.T) {
	errs := &errorList{}
	_, _, ok, err := parseReference(newCursor([]byte("ref {$alpha, }")), errs)
	assert.False(t, ok)
	require.Error(t, err)
}

func TestParseLiteralRecognizesBareTypeKeywordAsValue(t *testing.T) {
	errs := &errorList{}
	_, p, ok, err := parseLiteral(newCursor([]byte("string)")), None, errs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Type, p.Type())
	assert.Equal(t, "string", p.String())
}

func TestParseDataListScalar(t *testing.T) {
	errs := &errorList{}
	c := newCursor([]byte("1, 2, 3 }"))
	_, head, err := parseDataList(c, Int32, 0, errs)
	require.NoError(t, err)
	values := head.Values()
	require.Len(t, values, 3)
	assert.Equal(t, int64(1), values[0].Int64())
	assert.Equal(t, int64(3), values[2].Int64())
}

func TestParseDataListArrayGroups(t *testing.T) {
	errs := &errorList{}
	c := newCursor([]byte("{0, 0, 0}, {1, 0, 0} }"))
	_, head, err := parseDataList(c, Float, 3, errs)
	require.NoError(t, err)
	groups := head.Values()
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.Equal(t, 12, g.Size())
	}
}

func TestParseDataListRejectsTrailingComma(t *testing.T) {
	errs := &errorList{}
	c := newCursor([]byte("1, 2, }"))
	_, _, err := parseDataList(c, Int32, 0, errs)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrUnexpectedCharacter, pe.Code)
}

func TestParseDataListArrayGroupsRejectsTrailingComma(t *testing.T) {
	errs := &errorList{}
	c := newCursor([]byte("{0, 0, 0}, }"))
	_, _, err := parseDataList(c, Float, 3, errs)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrUnexpectedCharacter, pe.Code)
}

func TestParseDataListUnbalancedBracesIsHardError(t *testing.T) {
	errs := &errorList{}
	c := newCursor([]byte("1, 2, 3"))
	_, _, err := parseDataList(c, Int32, 0, errs)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrUnbalancedBraces, pe.Code)
}
