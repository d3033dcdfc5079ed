package parsers

// Parser drives the recursive-descent recognition of an OpenDDL document.
// It is stateful only in the sense that it accumulates errors and
// remembers the most recently produced tree; it holds no reference to
// the input buffer between calls to Parse.
type Parser struct {
	root *DDLNode
	errs errorList
}

// NewParser creates a parser with no parsed state.
func NewParser() *Parser {
	return &Parser{}
}

// Root returns the DocumentRoot produced by the most recent call to Parse,
// or nil if that call saw only whitespace/comments.
func (p *Parser) Root() *DDLNode { return p.root }

// Errors returns every error accumulated during the most recent Parse call,
// in encounter order.
func (p *Parser) Errors() []error { return p.errs.asErrors() }

// Parse recognizes buffer as a sequence of top-level nodes and returns a
// synthetic DocumentRoot holding them as children. On a
// hard error the corresponding node is discarded and parsing resumes at the
// next balanced '}'; Parse still returns the partial tree built so far
// alongside the combined error.
func (p *Parser) Parse(buffer []byte) (*DDLNode, error) {
	p.root = nil
	p.errs = errorList{}

	c := getNextToken(newCursor(buffer), &p.errs)
	if c.atEnd() {
		return nil, p.errs.combined()
	}

	root := newDDLNode(Identifier{Text: "DocumentRoot"}, nil, nil)
	for {
		c = getNextToken(c, &p.errs)
		if c.atEnd() {
			break
		}

		next, err := p.parseNode(c, root)
		if err != nil {
			p.errs.add(err)
		}
		if next.pos == c.pos {
			// Recognizer made no progress at all; force-advance to avoid an
			// infinite loop on an input the recovery pass also can't skip.
			next = next.advance(1)
		}
		c = next
	}

	p.root = root
	return root, p.errs.combined()
}

// ParseBytes is a package-level convenience that parses buffer once with a
// fresh Parser.
func ParseBytes(buffer []byte) (*DDLNode, error) {
	return NewParser().Parse(buffer)
}

// parseNode recognizes one top-level-or-nested node starting at c and, on
// success, attaches it to parent. It never attaches a partially-built node
// on error (spec §4.5 failure semantics: "discards its partial state").
func (p *Parser) parseNode(c cursor, parent *DDLNode) (cursor, error) {
	afterType, primType, arrayWidth, isPrim, err := parsePrimitiveDataType(c, &p.errs)
	if err != nil {
		return p.recover(c, 0), err
	}

	var typeID Identifier
	cur := c
	if isPrim {
		typeID = Identifier{Text: primType.String(), Position: NewPositionRange(c.position(), afterType.position())}
		cur = afterType
	} else {
		next, id, ok := parseIdentifier(c, &p.errs)
		if !ok {
			return p.recover(c, 0), newParseError(ErrUnexpectedCharacter,
				"expected a type identifier to start a node", NewPositionRange(c.position(), c.position()))
		}
		typeID = id
		cur = next
	}

	node := newDDLNode(typeID, nil, nil)
	node.Position = typeID.Position

	cur, name, hasName, err := parseName(cur, &p.errs)
	if err != nil {
		return p.recover(cur, 0), err
	}
	if hasName {
		node.Name = &name
	}

	cur, props, err := p.parseProplist(cur, node.Properties, &p.errs)
	if err != nil {
		return p.recover(cur, 0), err
	}
	node.Properties = props

	cur = getNextToken(cur, &p.errs)
	if cur.atEnd() || cur.buf[cur.pos] != OpenCurly {
		return p.recover(cur, 0), newParseError(ErrUnexpectedCharacter,
			"expected '{' to open the body of '"+typeID.Text+"'", NewPositionRange(cur.position(), cur.position()))
	}
	cur = cur.advance(1)

	if isPrim && primType == Ref {
		// "ref { ... }" names one reference list, not a run of independent
		// data-list values; the '{' above is this body's only opening
		// brace, so read the name list directly instead of going through
		// parseDataList's comma-separated-values loop.
		next, names, err := parseNameList(cur, &p.errs)
		if err != nil {
			return p.recover(next, 1), err
		}
		node.attachReference(names)
		cur = next
	} else if isPrim {
		next, values, err := parseDataList(cur, primType, arrayWidth, &p.errs)
		if err != nil {
			return p.recover(next, 1), err
		}
		if values != nil {
			node.attachValue(values)
		}
		cur = next
	} else {
		for {
			cur = getNextToken(cur, &p.errs)
			if cur.atEnd() {
				return cur, newParseErrorEOF(ErrUnbalancedBraces,
					"'"+typeID.Text+"' body was never closed with '}'")
			}
			if cur.buf[cur.pos] == CloseCurly {
				cur = cur.advance(1)
				break
			}
			next, childErr := p.parseNode(cur, node)
			if childErr != nil {
				p.errs.add(childErr)
				if next.pos == cur.pos {
					next = next.advance(1)
				}
			}
			cur = next
		}
	}

	attachChild(parent, node)
	return cur, nil
}

// attachChild makes node a child of parent, setting the back-edge. It is
// the driver-side counterpart to newDDLNode's auto-append, used here
// because nodes are built detached and only wired in on success.
func attachChild(parent, node *DDLNode) {
	node.Parent = parent
	parent.Children = append(parent.Children, node)
	parent.isStructSet = true
}

// parseProplist recognizes an optional '(' key '=' literal (',' key '='
// literal)* ')' clause (spec §4.5 step 4, grammar's proplist). A duplicate
// key within the same list is a hard DuplicatePropertyKey error (spec §9
// Open Question resolution). dst is appended to directly rather than
// built up in a fresh slice, so a pooled node's preserved Properties
// capacity (see pool.go) gets reused instead of discarded.
func (p *Parser) parseProplist(c cursor, dst []Property, errs *errorList) (cursor, []Property, error) {
	cur := getNextToken(c, errs)
	if cur.atEnd() || cur.buf[cur.pos] != OpenParen {
		return c, dst, nil
	}
	cur = cur.advance(1)

	props := dst
	seen := make(map[string]bool)
	for {
		cur = getNextToken(cur, errs)
		if cur.atEnd() {
			return cur, props, newParseErrorEOF(ErrUnexpectedEOF, "property list was never closed with ')'")
		}
		if cur.buf[cur.pos] == CloseParen {
			cur = cur.advance(1)
			return cur, props, nil
		}

		next, key, ok := parseIdentifier(cur, errs)
		if !ok {
			return cur, props, newParseError(ErrUnexpectedCharacter,
				"expected a property name", NewPositionRange(cur.position(), cur.position()))
		}
		if seen[key.Text] {
			return cur, props, newParseError(ErrDuplicatePropertyKey,
				"property '"+key.Text+"' declared more than once in this list", key.Position)
		}
		seen[key.Text] = true
		cur = getNextToken(next, errs)

		if cur.atEnd() || cur.buf[cur.pos] != Equals {
			return cur, props, newParseError(ErrUnexpectedCharacter,
				"expected '=' after property name '"+key.Text+"'", NewPositionRange(cur.position(), cur.position()))
		}
		cur = getNextToken(cur.advance(1), errs)

		next, val, matched, err := parseLiteral(cur, None, errs)
		if err != nil {
			return cur, props, err
		}
		if !matched {
			return cur, props, newParseError(ErrMalformedLiteral,
				"expected a literal value for property '"+key.Text+"'", NewPositionRange(cur.position(), cur.position()))
		}
		props = append(props, Property{Key: key, Value: val})
		cur = getNextToken(next, errs)

		if cur.atEnd() {
			return cur, props, newParseErrorEOF(ErrUnexpectedEOF, "property list was never closed with ')'")
		}
		if cur.buf[cur.pos] == CloseParen {
			cur = cur.advance(1)
			return cur, props, nil
		}
		if cur.buf[cur.pos] != Comma {
			return cur, props, newParseError(ErrUnexpectedCharacter,
				"expected ',' or ')' after property value", NewPositionRange(cur.position(), cur.position()))
		}
		cur = cur.advance(1)
	}
}

// recover implements the skip-to-nearest-enclosing-'}' strategy (spec §9).
// startDepth is 0 when the failing construct had not yet consumed its own
// opening '{' (a header/proplist error: the next '{' we meet, if any, is
// this node's own, and its matching '}' is ours to consume) and 1 when the
// failure happened after that '{' was already consumed (a data-list body
// error: the very next unmatched '}' is already ours).
//
// A '}' met while depth is already 0 belongs to an enclosing scope we never
// enter, not to the node being recovered; recover stops there without
// consuming it, so a parent's own body-closing loop still sees it.
func (p *Parser) recover(c cursor, startDepth int) cursor {
	depth := startDepth
	cur := c
	for !cur.atEnd() {
		switch cur.buf[cur.pos] {
		case OpenCurly:
			depth++
		case CloseCurly:
			if depth == 0 {
				return cur
			}
			depth--
			if depth == 0 {
				return cur.advance(1)
			}
		}
		cur = cur.advance(1)
	}
	return cur
}
