package parsers

import "regexp"

// ReIdentifier is the invariant every Identifier produced by the parser
// must satisfy (spec §8: "for all identifiers produced, the stored bytes
// match [A-Za-z_][A-Za-z0-9_]*"). It is not used on the hot parsing path —
// parseIdentifier enforces the same rule byte-by-byte without allocating —
// but is used by TestParseIdentifier to check every identifier it produces.
var ReIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReCanonicalFloat matches the canonical decimal literal form that
// strconv.FormatFloat(v, 'g', -1, 64) prints for finite values, used by the
// round-trip property test (spec §8) to confirm printed-then-reparsed values
// compare equal.
var ReCanonicalFloat = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?$`)

// ReEscapedChar matches a single recognized string-escape sequence
// (\\, \", \n, \t, \r, or \xHH); used by tests asserting that
// decodeEscape's accepted set and this pattern never drift apart.
var ReEscapedChar = regexp.MustCompile(`^\\(?:[\\"nrt]|x[0-9a-fA-F]{2})`)
