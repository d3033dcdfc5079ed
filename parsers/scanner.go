package parsers

// Scanner primitives. These are pure, non-allocating functions over a byte
// and, where noted, over a (cursor, end) pair expressed here as (buf []byte,
// pos int) — pos is always relative to the whole buffer so callers can
// compose these with the Parser's own cursor bookkeeping.

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAlpha(c byte) bool {
	return isUpper(c) || isLower(c)
}

func isNumeric(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isNumeric(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentifierStart(c byte) bool {
	return isAlpha(c) || c == Underscore
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isNumeric(c)
}

// isSeparator reports whether c is whitespace per spec §4.1.
func isSeparator(c byte) bool {
	switch c {
	case Space, Tab, CarriageReturn, NewLine:
		return true
	default:
		return false
	}
}

// isCommentOpen reports whether buf[pos:] begins a line or block comment.
func isCommentOpen(buf []byte, pos int) bool {
	if pos+1 >= len(buf) {
		return false
	}
	two := string(buf[pos : pos+2])
	return two == LineCommentPrefix || two == BlockCommentOpen
}

// isCommentClose reports whether buf[pos:] is the closing */ of a block
// comment.
func isCommentClose(buf []byte, pos int) bool {
	if pos+1 >= len(buf) {
		return false
	}
	return string(buf[pos:pos+2]) == BlockCommentClose
}

// getNextToken advances c past any run of separators and comments,
// returning the cursor positioned at the next significant byte (or at end
// of buffer). An unterminated block comment is reported through errs and
// the cursor is advanced to the end of the buffer.
func getNextToken(c cursor, errs *errorList) cursor {
	for {
		if c.atEnd() {
			return c
		}
		ch := c.buf[c.pos]

		if isSeparator(ch) {
			c = c.advance(1)
			continue
		}

		if isCommentOpen(c.buf, c.pos) {
			if c.buf[c.pos+1] == '/' {
				c = skipLineComment(c)
				continue
			}
			var ok bool
			c, ok = skipBlockComment(c)
			if !ok {
				errs.add(newParseErrorEOF(ErrUnterminatedComment,
					"block comment opened with /* was never closed with */"))
				return c
			}
			continue
		}

		return c
	}
}

func skipLineComment(c cursor) cursor {
	for !c.atEnd() && c.buf[c.pos] != NewLine {
		c = c.advance(1)
	}
	return c
}

// skipBlockComment advances past a non-nesting /* ... */ comment (spec §9:
// comments do not nest). Returns ok=false if */ is never found.
func skipBlockComment(c cursor) (cursor, bool) {
	c = c.advance(2) // skip "/*"
	for {
		if c.atEnd() {
			return c, false
		}
		if isCommentClose(c.buf, c.pos) {
			return c.advance(2), true
		}
		c = c.advance(1)
	}
}

// getNextSeparator advances c until a separator or structural punctuation
// byte is reached (spec §4.1; grounded directly on
// original_source/test/OpenDDLParserTest.cpp's getNextSeparatorTest).
func getNextSeparator(c cursor) cursor {
	for !c.atEnd() {
		ch := c.buf[c.pos]
		if isSeparator(ch) || isStructuralByte(ch) {
			break
		}
		c = c.advance(1)
	}
	return c
}

func isStructuralByte(c byte) bool {
	switch c {
	case OpenCurly, CloseCurly, OpenParen, CloseParen, OpenSquare, CloseSquare, Comma, Equals:
		return true
	default:
		return false
	}
}
