package parsers

// Identifier is an owned byte string captured from the input, matching
// [A-Za-z_][A-Za-z0-9_]* (spec §3). Identifiers are produced only by
// parseIdentifier, which enforces that shape at scan time.
type Identifier struct {
	Text     string
	Position PositionRange
}

// Scope distinguishes the two Name sigils.
type Scope int

const (
	// Global names are introduced by $.
	Global Scope = iota
	// Local names are introduced by %.
	Local
)

func (s Scope) String() string {
	if s == Global {
		return "global"
	}
	return "local"
}

// Name is an Identifier plus the scope sigil that introduced it (spec §3).
type Name struct {
	Scope Scope
	Ident Identifier
}

// Text returns the name including its sigil, e.g. "$alpha" or "%beta".
func (n Name) Text() string {
	if n.Scope == Global {
		return "$" + n.Ident.Text
	}
	return "%" + n.Ident.Text
}

// Property is a single (key = literal) pair attached to a node's header
// (spec §3).
type Property struct {
	Key   Identifier
	Value *PrimData
}

// DDLNode is a node in the parsed OpenDDL document tree (spec §3). The
// parser builds each node as either a data-list node (Values set, Children
// empty) or a structural node (Children set, Values nil), never both.
// isDataList and isStructSet record which kind a node became; attachValue
// and the child-append paths do not check them, so a call of the other
// kind is not rejected.
type DDLNode struct {
	NodeType   Identifier // the type keyword, e.g. "Metric" or "float"
	Name       *Name      // optional declared instance name
	Properties []Property
	Values     *PrimData  // set only for data-list nodes
	Children   []*DDLNode // set only for structural nodes
	Parent     *DDLNode   `json:"-"`
	Position   PositionRange

	isDataList  bool
	isStructSet bool
}

// newDDLNode constructs a node of the given type, optionally named, and
// appends it to parent's Children if parent is non-nil (spec §4.4 create).
// A node drawn from ddlNodePool keeps its previous Children/Properties
// backing arrays (truncated to length 0 by releaseTree) so that a tree
// built via ParsePooled reuses those allocations instead of growing fresh
// slices on every parse.
func newDDLNode(nodeType Identifier, name *Name, parent *DDLNode) *DDLNode {
	n := ddlNodePool.Get().(*DDLNode)
	children, props := n.Children[:0], n.Properties[:0]
	*n = DDLNode{NodeType: nodeType, Name: name, Parent: parent, Children: children, Properties: props}
	if parent != nil {
		parent.Children = append(parent.Children, n)
		parent.isStructSet = true
	}
	return n
}

// attachProperty appends a (key = value) property to the node's header.
func (n *DDLNode) attachProperty(key Identifier, value *PrimData) {
	n.Properties = append(n.Properties, Property{Key: key, Value: value})
}

// attachValue appends prim to the node's value chain, marking this node as
// a data-list node. It does not check whether the node already has
// children.
func (n *DDLNode) attachValue(prim *PrimData) {
	n.isDataList = true
	if n.Values == nil {
		n.Values = prim
	} else {
		n.Values.append(prim)
	}
}

// attachReference stores names as a Ref-typed PrimData value on the node,
// produced by `ref { name, ... }` (spec §4.2.8).
func (n *DDLNode) attachReference(names []Name) *PrimData {
	p := allocPrimData(Ref)
	p.setRefs(names)
	n.attachValue(p)
	return p
}

// detach removes n from its parent's Children and clears the back-edge,
// returning ownership of the (now root-less) subtree to the caller
// (spec §4.4 detach).
func (n *DDLNode) detach() {
	if n.Parent == nil {
		return
	}
	siblings := n.Parent.Children
	for i, c := range siblings {
		if c == n {
			n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// IsDataList reports whether n carries a value list (as opposed to
// children).
func (n *DDLNode) IsDataList() bool { return n.isDataList }

// Type returns the node's type identifier.
func (n *DDLNode) Type() Identifier { return n.NodeType }

// GetName returns the node's declared name, or nil if unnamed.
func (n *DDLNode) GetName() *Name { return n.Name }
