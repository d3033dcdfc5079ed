package parsers

import (
	"encoding/json"
	"math"
)

// PrimitiveType is the closed enumeration of OpenDDL primitive type tags
// (spec §3).
type PrimitiveType int

const (
	None PrimitiveType = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float
	Double
	String
	Ref
	Type
)

// String returns the canonical OpenDDL keyword spelling for t (including
// "ref" and "type"), or "none" for None, which has no keyword.
func (t PrimitiveType) String() string {
	for kw, pt := range primitiveTypeKeywords {
		if pt == t {
			return kw
		}
	}
	return "none"
}

// width returns the fixed payload byte width for scalar primitive types, and
// 0 for the variable-width types (String, Ref, Type) whose size is derived
// from their content rather than their tag.
func (t PrimitiveType) width() int {
	switch t {
	case Bool, Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float:
		return 4
	case Int64, UInt64, Double:
		return 8
	default:
		return 0
	}
}

func (t PrimitiveType) isInteger() bool {
	switch t {
	case Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

func (t PrimitiveType) isFloat() bool {
	return t == Float || t == Double
}

func (t PrimitiveType) isUnsigned() bool {
	switch t {
	case UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// PrimData is a tagged value cell (spec §3/§4.3). Scalars store their bytes
// directly in data; String/Type store their text bytes in data and Ref
// stores its Name list in refs, leaving data empty. next chains successive
// values of a comma-separated data list; for an array-typed list each value
// is one whole element group packed into a single cell.
type PrimData struct {
	typ  PrimitiveType
	size int
	data []byte
	next *PrimData

	// refs holds the decoded Name list when typ == Ref; str holds the
	// decoded text when typ == String or Type (kept alongside data so callers
	// needn't re-decode UTF-8 out of a raw byte slice for the common case).
	str  string
	refs []Name
}

// allocPrimData creates a new, zeroed PrimData cell for the given tag
// (spec §4.3 alloc). For scalar tags the payload is sized to the type's
// fixed width. String/Type cells get size/data from setString; a Ref cell
// gets its names from setRefs and keeps size 0 and no data.
func allocPrimData(t PrimitiveType) *PrimData {
	p := primDataPool.Get().(*PrimData)
	*p = PrimData{typ: t}
	if w := t.width(); w > 0 {
		p.data = make([]byte, w)
		p.size = w
	}
	return p
}

// allocPrimDataArray creates a PrimData sized to hold n elements of the
// given fixed-width element type (spec §4.2.3: float[3] etc). The payload
// is zeroed; subsequent literal parsing fills slots in place.
func allocPrimDataArray(elem PrimitiveType, n int) *PrimData {
	p := primDataPool.Get().(*PrimData)
	w := elem.width()
	*p = PrimData{typ: elem, size: w * n, data: make([]byte, w*n)}
	return p
}

// release returns p and its entire next chain to the pool (spec §4.3:
// "release releases the entire next chain transitively").
func release(p *PrimData) {
	for p != nil {
		n := p.next
		*p = PrimData{}
		primDataPool.Put(p)
		p = n
	}
}

// append chains next onto the end of p's successor list (spec §4.3).
func (p *PrimData) append(next *PrimData) {
	cur := p
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = next
}

// Values returns this PrimData and its next-chain flattened into a slice,
// in order. Useful for callers that want random access instead of walking
// the linked list by hand.
func (p *PrimData) Values() []*PrimData {
	if p == nil {
		return nil
	}
	var out []*PrimData
	for cur := p; cur != nil; cur = cur.next {
		out = append(out, cur)
	}
	return out
}

// Type returns the primitive type tag.
func (p *PrimData) Type() PrimitiveType { return p.typ }

// Size returns the payload byte length.
func (p *PrimData) Size() int { return p.size }

// Next returns the successor in the data-list/array chain, or nil.
func (p *PrimData) Next() *PrimData { return p.next }

func (p *PrimData) setBool(v bool) {
	if v {
		p.data[0] = 1
	} else {
		p.data[0] = 0
	}
}

// Bool returns the decoded boolean value. Callers must check Type() == Bool
// first (spec §4.3: "a read with a tag mismatch is a programmer error").
func (p *PrimData) Bool() bool { return p.data[0] != 0 }

func (p *PrimData) setInt64(v int64) {
	for i := 0; i < len(p.data); i++ {
		p.data[i] = byte(v >> (8 * i))
	}
}

func (p *PrimData) rawUint() uint64 {
	var v uint64
	for i := len(p.data) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(p.data[i])
	}
	return v
}

// Int64 returns the decoded integer value, sign-extended from the type's
// fixed width.
func (p *PrimData) Int64() int64 {
	v := p.rawUint()
	switch p.typ {
	case Int8:
		return int64(int8(v))
	case Int16:
		return int64(int16(v))
	case Int32:
		return int64(int32(v))
	default:
		return int64(v)
	}
}

// UInt64 returns the decoded unsigned integer value.
func (p *PrimData) UInt64() uint64 { return p.rawUint() }

func (p *PrimData) setFloat32(v float32) {
	bits := math.Float32bits(v)
	for i := 0; i < 4; i++ {
		p.data[i] = byte(bits >> (8 * i))
	}
}

func (p *PrimData) setFloat64(v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		p.data[i] = byte(bits >> (8 * i))
	}
}

// Float32 returns the decoded value of a Float-tagged PrimData.
func (p *PrimData) Float32() float32 {
	var bits uint32
	for i := 3; i >= 0; i-- {
		bits = (bits << 8) | uint32(p.data[i])
	}
	return math.Float32frombits(bits)
}

// Float64 returns the decoded value of a Double-tagged PrimData.
func (p *PrimData) Float64() float64 {
	var bits uint64
	for i := 7; i >= 0; i-- {
		bits = (bits << 8) | uint64(p.data[i])
	}
	return math.Float64frombits(bits)
}

func (p *PrimData) setString(s string) {
	p.str = s
	p.data = []byte(s)
	p.size = len(p.data)
}

// String returns the decoded text of a String-tagged PrimData.
func (p *PrimData) String() string { return p.str }

func (p *PrimData) setRefs(names []Name) {
	p.refs = names
}

// Refs returns the decoded Name list of a Ref-tagged PrimData.
func (p *PrimData) Refs() []Name { return p.refs }

// MarshalJSON renders the decoded value rather than PrimData's unexported
// storage fields, so a pretty-printed tree (utils.FprintTree) shows the
// literal a reader typed instead of "{}". A fixed-width array group
// (allocPrimDataArray; spec §4.2.3) packs arrayWidth scalars back to back in
// data, so Value is a single scalar for an ordinary literal and a slice of
// len(data)/width scalars for a group of two or more (a one-element group
// renders as a single scalar).
func (p *PrimData) MarshalJSON() ([]byte, error) {
	wire := struct {
		Type  string      `json:"type"`
		Value interface{} `json:"value,omitempty"`
		Next  *PrimData   `json:"next,omitempty"`
	}{Type: p.typ.String(), Next: p.next}

	switch p.typ {
	case String, Type:
		wire.Value = p.str
	case Ref:
		wire.Value = p.refs
	default:
		if w := p.typ.width(); w > 0 && len(p.data) > 0 {
			n := len(p.data) / w
			if n <= 1 {
				wire.Value = decodeScalar(p.typ, p.data)
			} else {
				vals := make([]interface{}, n)
				for i := 0; i < n; i++ {
					vals[i] = decodeScalar(p.typ, p.data[i*w:(i+1)*w])
				}
				wire.Value = vals
			}
		}
	}
	return json.Marshal(wire)
}

// decodeScalar decodes a single little-endian scalar of the given type from
// a byte slice exactly t.width() long (one element of a PrimData payload).
func decodeScalar(t PrimitiveType, data []byte) interface{} {
	var v uint64
	for i := len(data) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(data[i])
	}
	switch t {
	case Bool:
		return data[0] != 0
	case Int8:
		return int64(int8(v))
	case Int16:
		return int64(int16(v))
	case Int32:
		return int64(int32(v))
	case Int64:
		return int64(v)
	case UInt8, UInt16, UInt32, UInt64:
		return v
	case Float:
		return math.Float32frombits(uint32(v))
	case Double:
		return math.Float64frombits(v)
	default:
		return nil
	}
}
