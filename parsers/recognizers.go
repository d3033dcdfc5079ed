package parsers

import (
	"strconv"
	"strings"
)

// Token recognizers (spec §4.2). Each has the shape
// (cursor_in) -> (cursor_out, value, ok, err): on success ok is true and
// cursor_out has advanced past the recognized text; on soft failure ok is
// false, err is nil, and cursor_out == cursor_in; on hard failure err is
// non-nil and the construct that called the recognizer should abort.
//
// Escape-sequence and numeric-literal scanning here is adapted from the
// teacher's parsers/tokenizer.go (escapeString, parseNumber,
// parseRegularString); the soft/hard-fail contract and the expected-type
// parameter on integer/float recognizers come directly from
// original_source/test/OpenDDLParserTest.cpp. See DESIGN.md.

// parseIdentifier recognizes [A-Za-z_][A-Za-z0-9_]* (spec §4.2.1).
func parseIdentifier(c cursor, errs *errorList) (cursor, Identifier, bool) {
	orig := c
	c = getNextToken(c, errs)
	if c.atEnd() || !isIdentifierStart(c.buf[c.pos]) {
		return orig, Identifier{}, false
	}
	start := c
	for !c.atEnd() && isIdentifierPart(c.buf[c.pos]) {
		c = c.advance(1)
	}
	text := string(start.buf[start.pos:c.pos])
	id := Identifier{
		Text:     text,
		Position: NewPositionRange(start.position(), c.position()),
	}
	return c, id, true
}

// parseName recognizes ('$'|'%') identifier (spec §4.2.2).
func parseName(c cursor, errs *errorList) (cursor, Name, bool, error) {
	start := getNextToken(c, errs)
	if start.atEnd() {
		return c, Name{}, false, nil
	}
	sigil := start.buf[start.pos]
	if sigil != DollarSign && sigil != PercentSign {
		return c, Name{}, false, nil
	}

	afterSigil := start.advance(1)
	next, id, ok := parseIdentifier(afterSigil, errs)
	if !ok {
		return c, Name{}, false, newParseError(
			ErrUnexpectedCharacter,
			"expected an identifier after '"+string(sigil)+"'",
			NewPositionRange(start.position(), start.position()),
		)
	}

	scope := Global
	if sigil == PercentSign {
		scope = Local
	}
	return next, Name{Scope: scope, Ident: id}, true, nil
}

// parsePrimitiveDataType recognizes one of the reserved type keywords,
// optionally followed by an array-size clause [N] (spec §4.2.3).
// arrayWidth is 0 when no array clause was present, else the declared N.
func parsePrimitiveDataType(c cursor, errs *errorList) (next cursor, typ PrimitiveType, arrayWidth int, ok bool, err error) {
	afterID, id, matched := parseIdentifier(c, errs)
	if !matched {
		return c, None, 0, false, nil
	}
	pt, known := primitiveTypeKeywords[id.Text]
	if !known {
		// An array-dimension clause can only follow a real primitive type
		// keyword; a structural node's own type identifier is never
		// immediately followed by '[', so this identifier is very likely a
		// misspelled reserved type (e.g. "flot[3]") rather than a node name.
		if !afterID.atEnd() && afterID.buf[afterID.pos] == OpenSquare {
			return c, None, 0, false, newParseError(ErrUnknownType,
				"'"+id.Text+"' is not a recognized primitive type",
				id.Position)
		}
		return c, None, 0, false, nil
	}

	cur := afterID
	if cur.atEnd() || cur.buf[cur.pos] != OpenSquare {
		return cur, pt, 0, true, nil
	}

	// Array-size clause. An element group is packed into one PrimData's data
	// as arrayWidth fixed-size slots (see "Array representation decision" in
	// DESIGN.md), which only works for pt's with a nonzero scalar width;
	// String/Ref/Type have no fixed per-element byte width to slot into.
	if pt.width() == 0 {
		return c, None, 0, false, newParseError(
			ErrMalformedLiteral,
			"'"+pt.String()+"[...]' is not supported: "+pt.String()+" has no fixed element width",
			id.Position,
		)
	}
	openPos := cur.position()
	cur = cur.advance(1)
	digitsStart := cur
	for !cur.atEnd() && isNumeric(cur.buf[cur.pos]) {
		cur = cur.advance(1)
	}
	if cur.pos == digitsStart.pos {
		return c, None, 0, false, newParseError(
			ErrMalformedLiteral,
			"array dimension must be a positive decimal integer",
			NewPositionRange(openPos, cur.position()),
		)
	}
	n, convErr := strconv.Atoi(string(digitsStart.buf[digitsStart.pos:cur.pos]))
	if convErr != nil {
		return c, None, 0, false, newParseError(
			ErrMalformedLiteral, "array dimension out of range",
			NewPositionRange(openPos, cur.position()))
	}
	if cur.atEnd() || cur.buf[cur.pos] != CloseSquare {
		return c, None, 0, false, newParseError(
			ErrUnexpectedCharacter, "missing ']' to close array dimension",
			NewPositionRange(openPos, cur.position()))
	}
	cur = cur.advance(1)
	if n == 0 {
		return c, None, 0, false, newParseError(
			ErrMalformedLiteral, "array dimension must be positive, got 0",
			NewPositionRange(openPos, cur.position()))
	}

	return cur, pt, n, true, nil
}

// parseBooleanLiteral recognizes the exact tokens true/false (spec §4.2.4).
func parseBooleanLiteral(c cursor, errs *errorList) (cursor, *PrimData, bool) {
	start := getNextToken(c, errs)
	end := getNextSeparator(start)
	word := string(start.buf[start.pos:end.pos])

	switch word {
	case literalTrue, literalFalse:
		p := allocPrimData(Bool)
		p.setBool(word == literalTrue)
		return end, p, true
	default:
		return c, nil, false
	}
}

// parseIntegerLiteral recognizes decimal/hex/binary/char integer literals
// (spec §4.2.5). expected defaults to Int32 when None is passed; if expected
// is a non-integer type the recognizer soft-fails (cursor unchanged).
func parseIntegerLiteral(c cursor, expected PrimitiveType, errs *errorList) (cursor, *PrimData, bool, error) {
	target := expected
	if target == None {
		target = Int32
	}
	if !target.isInteger() {
		return c, nil, false, nil
	}

	start := getNextToken(c, errs)
	if start.atEnd() {
		return c, nil, false, nil
	}

	// Character literal: 'c' or simple escape.
	if start.buf[start.pos] == '\'' {
		return parseCharLiteral(start, target)
	}

	cur := start
	sign := int64(1)
	if !cur.atEnd() && (cur.buf[cur.pos] == '+' || cur.buf[cur.pos] == '-') {
		if cur.buf[cur.pos] == '-' {
			sign = -1
		}
		cur = cur.advance(1)
	}
	if cur.atEnd() || !(isNumeric(cur.buf[cur.pos])) {
		return c, nil, false, nil
	}
	if sign == -1 && target.isUnsigned() {
		end := getNextSeparator(start)
		return c, nil, false, newParseError(ErrMalformedLiteral,
			"negative literal is not valid for "+target.String(),
			NewPositionRange(start.position(), end.position()))
	}

	base := 10
	digitsStart := cur
	if cur.buf[cur.pos] == '0' {
		if b2, ok := cur.byteAt(1); ok && (b2 == 'x' || b2 == 'X') {
			base = 16
			cur = cur.advance(2)
			digitsStart = cur
			for !cur.atEnd() && isHexDigit(cur.buf[cur.pos]) {
				cur = cur.advance(1)
			}
			return finishInteger(c, cur, digitsStart, cur, base, sign, target)
		}
		if b2, ok := cur.byteAt(1); ok && (b2 == 'b' || b2 == 'B') {
			base = 2
			cur = cur.advance(2)
			digitsStart = cur
			for !cur.atEnd() && isBinaryDigit(cur.buf[cur.pos]) {
				cur = cur.advance(1)
			}
			return finishInteger(c, cur, digitsStart, cur, base, sign, target)
		}
	}
	for !cur.atEnd() && isNumeric(cur.buf[cur.pos]) {
		cur = cur.advance(1)
	}
	return finishInteger(c, cur, digitsStart, cur, base, sign, target)
}

func finishInteger(orig, cur, digitsStart, digitsEnd cursor, base int, sign int64, target PrimitiveType) (cursor, *PrimData, bool, error) {
	digits := string(digitsStart.buf[digitsStart.pos:digitsEnd.pos])
	if digits == "" {
		return orig, nil, false, nil
	}

	width := target.width()
	if target.isUnsigned() {
		v, err := strconv.ParseUint(digits, base, width*8)
		if err != nil {
			return orig, nil, false, newParseError(ErrMalformedLiteral,
				"integer literal does not fit in "+target.String(),
				NewPositionRange(digitsStart.position(), cur.position()))
		}
		p := allocPrimData(target)
		p.setInt64(int64(v))
		return cur, p, true, nil
	}

	v, err := strconv.ParseInt(digits, base, width*8)
	if err != nil {
		return orig, nil, false, newParseError(ErrMalformedLiteral,
			"integer literal does not fit in "+target.String(),
			NewPositionRange(digitsStart.position(), cur.position()))
	}
	p := allocPrimData(target)
	p.setInt64(sign * v)
	return cur, p, true, nil
}

func parseCharLiteral(c cursor, target PrimitiveType) (cursor, *PrimData, bool, error) {
	start := c
	cur := c.advance(1) // skip opening quote
	if cur.atEnd() {
		return c, nil, false, newParseErrorEOF(ErrUnterminatedString, "character literal not closed")
	}

	var value byte
	if cur.buf[cur.pos] == Backslash {
		cur = cur.advance(1)
		if cur.atEnd() {
			return c, nil, false, newParseErrorEOF(ErrMalformedLiteral, "dangling escape in character literal")
		}
		switch cur.buf[cur.pos] {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		case 'r':
			value = '\r'
		case '\\':
			value = '\\'
		case '\'':
			value = '\''
		default:
			value = cur.buf[cur.pos]
		}
		cur = cur.advance(1)
	} else {
		value = cur.buf[cur.pos]
		cur = cur.advance(1)
	}

	if cur.atEnd() || cur.buf[cur.pos] != '\'' {
		return c, nil, false, newParseError(ErrMalformedLiteral,
			"character literal must contain exactly one character",
			NewPositionRange(start.position(), cur.position()))
	}
	cur = cur.advance(1)

	p := allocPrimData(target)
	p.setInt64(int64(value))
	return cur, p, true, nil
}

// parseFloatLiteral recognizes decimal and hexadecimal float literals
// (spec §4.2.6). expected defaults to Float; Double selects the wider tag.
func parseFloatLiteral(c cursor, expected PrimitiveType, errs *errorList) (cursor, *PrimData, bool, error) {
	target := expected
	if target == None {
		target = Float
	}
	if !target.isFloat() {
		return c, nil, false, nil
	}

	start := getNextToken(c, errs)
	cur := start
	if !cur.atEnd() && (cur.buf[cur.pos] == '+' || cur.buf[cur.pos] == '-') {
		cur = cur.advance(1)
	}

	if !cur.atEnd() && cur.buf[cur.pos] == '0' {
		if b2, ok := cur.byteAt(1); ok && (b2 == 'x' || b2 == 'X') {
			hexStart := cur
			cur = cur.advance(2)
			for !cur.atEnd() && (isHexDigit(cur.buf[cur.pos]) || cur.buf[cur.pos] == '.' ||
				cur.buf[cur.pos] == 'p' || cur.buf[cur.pos] == 'P' ||
				cur.buf[cur.pos] == '+' || cur.buf[cur.pos] == '-') {
				cur = cur.advance(1)
			}
			text := string(hexStart.buf[start.pos:cur.pos])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return start, nil, false, newParseError(ErrMalformedLiteral,
					"malformed hexadecimal float literal", NewPositionRange(start.position(), cur.position()))
			}
			return cur, makeFloat(target, v), true, nil
		}
	}

	digitsStart := cur
	sawDigit := false
	for !cur.atEnd() && isNumeric(cur.buf[cur.pos]) {
		cur = cur.advance(1)
		sawDigit = true
	}
	if !cur.atEnd() && cur.buf[cur.pos] == '.' {
		cur = cur.advance(1)
		for !cur.atEnd() && isNumeric(cur.buf[cur.pos]) {
			cur = cur.advance(1)
			sawDigit = true
		}
	}
	if !sawDigit {
		return c, nil, false, nil
	}
	if !cur.atEnd() && (cur.buf[cur.pos] == 'e' || cur.buf[cur.pos] == 'E') {
		expCur := cur.advance(1)
		if !expCur.atEnd() && (expCur.buf[expCur.pos] == '+' || expCur.buf[expCur.pos] == '-') {
			expCur = expCur.advance(1)
		}
		if !expCur.atEnd() && isNumeric(expCur.buf[expCur.pos]) {
			for !expCur.atEnd() && isNumeric(expCur.buf[expCur.pos]) {
				expCur = expCur.advance(1)
			}
			cur = expCur
		}
	}

	text := string(digitsStart.buf[start.pos:cur.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return c, nil, false, newParseError(ErrMalformedLiteral, "malformed float literal",
			NewPositionRange(start.position(), cur.position()))
	}
	return cur, makeFloat(target, v), true, nil
}

func makeFloat(target PrimitiveType, v float64) *PrimData {
	p := allocPrimData(target)
	if target == Double {
		p.setFloat64(v)
	} else {
		p.setFloat32(float32(v))
	}
	return p
}

// parseStringLiteral recognizes a "..." literal with \\ \" \n \t \r \xHH
// escapes (spec §4.2.7). An unterminated string is a hard error.
func parseStringLiteral(c cursor, errs *errorList) (cursor, *PrimData, bool, error) {
	start := getNextToken(c, errs)
	if start.atEnd() || start.buf[start.pos] != DoubleQuote {
		return c, nil, false, nil
	}

	cur := start.advance(1)
	var sb strings.Builder
	for {
		if cur.atEnd() {
			return c, nil, false, newParseErrorEOF(ErrUnterminatedString,
				"string literal opened with '\"' was never closed")
		}
		ch := cur.buf[cur.pos]
		if ch == DoubleQuote {
			cur = cur.advance(1)
			break
		}
		if ch == Backslash {
			next, decoded, err := decodeEscape(cur)
			if err != nil {
				return c, nil, false, err
			}
			sb.WriteByte(decoded)
			cur = next
			continue
		}
		sb.WriteByte(ch)
		cur = cur.advance(1)
	}

	p := allocPrimData(String)
	p.setString(sb.String())
	return cur, p, true, nil
}

// decodeEscape decodes a single escape sequence starting at the backslash.
func decodeEscape(c cursor) (cursor, byte, error) {
	cur := c.advance(1) // skip backslash
	if cur.atEnd() {
		return cur, 0, newParseErrorEOF(ErrUnterminatedString, "dangling escape at end of string")
	}
	ch := cur.buf[cur.pos]
	switch ch {
	case '\\':
		return cur.advance(1), '\\', nil
	case '"':
		return cur.advance(1), '"', nil
	case 'n':
		return cur.advance(1), '\n', nil
	case 't':
		return cur.advance(1), '\t', nil
	case 'r':
		return cur.advance(1), '\r', nil
	case 'x':
		hexStart := cur.advance(1)
		end := hexStart.advance(2)
		if end.pos-hexStart.pos != 2 || hexStart.atEnd() {
			return c, 0, newParseError(ErrMalformedLiteral,
				"\\x escape requires exactly two hexadecimal digits",
				NewPositionRange(c.position(), end.position()))
		}
		hex := string(hexStart.buf[hexStart.pos:end.pos])
		v, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return c, 0, newParseError(ErrMalformedLiteral,
				"invalid \\x escape '"+hex+"'", NewPositionRange(c.position(), end.position()))
		}
		return end, byte(v), nil
	default:
		return c, 0, newParseError(ErrMalformedLiteral,
			"unrecognized escape sequence '\\"+string(ch)+"'",
			NewPositionRange(c.position(), cur.advance(1).position()))
	}
}

// parseNameList recognizes the "name (',' name)* '}'" body of a reference
// list, with the opening '{' already consumed by the caller (spec §4.2.8,
// GLOSSARY "Reference list"). A reference list is a single ordered Name
// sequence, not a comma-separated run of independent values, so this is
// used directly by a ref-typed data-list node's own body (its header
// already consumed both "ref" and the opening '{') as well as by
// parseReference (the `ref { ... }` form used as a literal value).
func parseNameList(c cursor, errs *errorList) (cursor, []Name, error) {
	cur := c
	var names []Name
	for {
		cur = getNextToken(cur, errs)
		if cur.atEnd() {
			return cur, names, newParseErrorEOF(ErrUnexpectedEOF, "ref { ... } was never closed")
		}
		if cur.buf[cur.pos] == CloseCurly {
			if len(names) == 0 {
				return cur, names, newParseError(ErrUnexpectedCharacter,
					"ref { } must name at least one reference", NewPositionRange(cur.position(), cur.position()))
			}
			return cur.advance(1), names, nil
		}

		next, name, matched, err := parseName(cur, errs)
		if err != nil {
			return cur, names, err
		}
		if !matched {
			return cur, names, newParseError(ErrUnexpectedCharacter,
				"expected a $global or %local name inside ref { }", NewPositionRange(cur.position(), cur.position()))
		}
		names = append(names, name)
		cur = getNextToken(next, errs)

		if cur.atEnd() {
			return cur, names, newParseErrorEOF(ErrUnexpectedEOF, "ref { ... } was never closed")
		}
		if cur.buf[cur.pos] == CloseCurly {
			return cur.advance(1), names, nil
		}
		if cur.buf[cur.pos] != Comma {
			return cur, names, newParseError(ErrUnexpectedCharacter,
				"expected ',' or '}' after reference name", NewPositionRange(cur.position(), cur.position()))
		}
		cur = cur.advance(1)
		// Reject trailing comma: "name, }" is invalid.
		peek := getNextToken(cur, errs)
		if !peek.atEnd() && peek.buf[peek.pos] == CloseCurly {
			return cur, names, newParseError(ErrUnexpectedCharacter,
				"trailing comma not allowed in ref { }", NewPositionRange(peek.position(), peek.position()))
		}
	}
}

// parseReference recognizes the full `ref { name, name, ... }` form,
// including its own "ref" keyword, for contexts where "ref" appears as a
// literal value under some other declared type (e.g. a property value)
// rather than as a node's own declared type. A ref-typed node's body is
// parsed directly by parseNameList instead, since its header already
// consumed "ref" and the opening '{' (see parser.go).
func parseReference(c cursor, errs *errorList) (cursor, []Name, bool, error) {
	afterKw, kw, ok := parseIdentifier(c, errs)
	if !ok || kw.Text != refKeyword {
		return c, nil, false, nil
	}

	cur := getNextToken(afterKw, errs)
	if cur.atEnd() || cur.buf[cur.pos] != OpenCurly {
		return c, nil, false, nil
	}
	cur = cur.advance(1)

	next, names, err := parseNameList(cur, errs)
	if err != nil {
		return c, nil, false, err
	}
	return next, names, true, nil
}

// parseLiteral tries each literal production in turn for a single value of
// the declared type (used by parseDataList, and by parseProplist with
// declared == None). declared is never Ref here: a ref-typed data-list
// node's body is parsed directly by parseNameList (parser.go), since
// "ref { ... }" names a single reference list rather than a run of
// independent values.
func parseLiteral(c cursor, declared PrimitiveType, errs *errorList) (cursor, *PrimData, bool, error) {
	if declared == Bool {
		next, p, ok := parseBooleanLiteral(c, errs)
		return next, p, ok, nil
	}
	if declared.isInteger() {
		return parseIntegerLiteral(c, declared, errs)
	}
	if declared.isFloat() {
		return parseFloatLiteral(c, declared, errs)
	}
	if declared == String {
		return parseStringLiteral(c, errs)
	}
	// declared == None / Type: accept whichever literal production matches.
	if next, p, ok := parseBooleanLiteral(c, errs); ok {
		return next, p, true, nil
	}
	if next, names, ok, err := parseReference(c, errs); ok || err != nil {
		if err != nil {
			return c, nil, ok, err
		}
		p := allocPrimData(Ref)
		p.setRefs(names)
		return next, p, true, nil
	}
	if next, p, ok := parseTypeLiteral(c, errs); ok {
		return next, p, true, nil
	}
	if next, p, ok, err := parseStringLiteral(c, errs); ok || err != nil {
		return next, p, ok, err
	}
	if next, p, ok, err := parseFloatLiteralProbe(c, errs); ok || err != nil {
		return next, p, ok, err
	}
	return parseIntegerLiteral(c, Int32, errs)
}

// parseTypeLiteral recognizes a bare reserved type keyword used as a literal
// value (spec §3: Type is its own variable-width PrimitiveType tag, carrying
// a heap-allocated payload like String/Ref) — e.g. the property value in
// `type = string`. Must run after parseReference, since "ref" is itself a
// reserved type keyword and "ref { ... }" needs to be recognized as a
// reference list rather than a bare Type literal naming "ref".
func parseTypeLiteral(c cursor, errs *errorList) (cursor, *PrimData, bool) {
	next, id, matched := parseIdentifier(c, errs)
	if !matched {
		return c, nil, false
	}
	if _, known := primitiveTypeKeywords[id.Text]; !known {
		return c, nil, false
	}
	p := allocPrimData(Type)
	p.setString(id.Text)
	return next, p, true
}

// parseFloatLiteralProbe tries a float literal without committing to a
// scalar tag ahead of time, used only by the untyped fallback in
// parseLiteral. It only succeeds when the text actually contains '.' or an
// exponent, so plain integers fall through to parseIntegerLiteral.
func parseFloatLiteralProbe(c cursor, errs *errorList) (cursor, *PrimData, bool, error) {
	next, p, ok, err := parseFloatLiteral(c, Float, errs)
	if !ok || err != nil {
		// A hex integer such as 0xFF is rejected by the hex-float path;
		// leave it to parseIntegerLiteral rather than failing hard here.
		return c, nil, false, nil
	}
	if next.pos-c.pos == 0 {
		return c, nil, false, nil
	}
	raw := string(c.buf[c.pos:next.pos])
	if !strings.ContainsAny(raw, ".eE") {
		return c, nil, false, nil
	}
	return next, p, true, nil
}

// parseDataList recognizes the comma-separated literal body of a data-list
// node (spec §4.2.9). For array-typed declarations (arrayWidth > 0) the
// body must be a sequence of {v, v, v} element groups of exactly arrayWidth
// elements each.
func parseDataList(c cursor, declared PrimitiveType, arrayWidth int, errs *errorList) (cursor, *PrimData, error) {
	cur := getNextToken(c, errs)
	var head, tail *PrimData

	appendValue := func(p *PrimData) {
		if head == nil {
			head = p
			tail = p
		} else {
			tail.append(p)
			tail = p
		}
	}

	first := true
	for {
		cur = getNextToken(cur, errs)
		if cur.atEnd() {
			return cur, head, newParseErrorEOF(ErrUnbalancedBraces, "data list was never closed with '}'")
		}
		if cur.buf[cur.pos] == CloseCurly {
			break
		}
		if !first {
			if cur.buf[cur.pos] != Comma {
				return cur, head, newParseError(ErrUnexpectedCharacter,
					"expected ',' between data list values", NewPositionRange(cur.position(), cur.position()))
			}
			cur = cur.advance(1)
			cur = getNextToken(cur, errs)
			if !cur.atEnd() && cur.buf[cur.pos] == CloseCurly {
				return cur, head, newParseError(ErrUnexpectedCharacter,
					"trailing comma not allowed in data list", NewPositionRange(cur.position(), cur.position()))
			}
		}
		first = false

		if arrayWidth > 0 {
			if cur.atEnd() || cur.buf[cur.pos] != OpenCurly {
				return cur, head, newParseError(ErrUnexpectedCharacter,
					"expected '{' to start array element group", NewPositionRange(cur.position(), cur.position()))
			}
			cur = cur.advance(1)

			group := allocPrimDataArray(declared, arrayWidth)
			width := declared.width()
			for i := 0; i < arrayWidth; i++ {
				if i > 0 {
					cur = getNextToken(cur, errs)
					if cur.atEnd() || cur.buf[cur.pos] != Comma {
						return cur, head, newParseError(ErrUnexpectedCharacter,
							"array element group has too few values", NewPositionRange(cur.position(), cur.position()))
					}
					cur = cur.advance(1)
				}
				next, val, ok, err := parseLiteral(cur, declared, errs)
				if err != nil {
					return cur, head, err
				}
				if !ok {
					return cur, head, newParseError(ErrMalformedLiteral,
						"expected a "+declared.String()+" literal in array element group",
						NewPositionRange(cur.position(), cur.position()))
				}
				copy(group.data[i*width:(i+1)*width], val.data)
				release(val)
				cur = next
			}
			cur = getNextToken(cur, errs)
			if cur.atEnd() || cur.buf[cur.pos] != CloseCurly {
				return cur, head, newParseError(ErrUnexpectedCharacter,
					"array element group has too many values or is missing '}'",
					NewPositionRange(cur.position(), cur.position()))
			}
			cur = cur.advance(1)
			appendValue(group)
			continue
		}

		next, val, ok, err := parseLiteral(cur, declared, errs)
		if err != nil {
			return cur, head, err
		}
		if !ok {
			return cur, head, newParseError(ErrMalformedLiteral,
				"expected a "+declared.String()+" literal", NewPositionRange(cur.position(), cur.position()))
		}
		appendValue(val)
		cur = next
	}

	return cur.advance(1), head, nil
}
