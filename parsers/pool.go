package parsers

import "sync"

// Object pools for reducing allocations across repeated parses. A caller
// that parses many small OpenDDL documents back-to-back (the common case
// for a mesh/scene loader driving this package) can use ParsePooled instead
// of ParseBytes to recycle PrimData and DDLNode allocations between calls.
//
// Pools are retargeted at the types this package actually allocates
// (PrimData, DDLNode) rather than a token/object/array/member set.
var (
	primDataPool = sync.Pool{
		New: func() interface{} { return &PrimData{} },
	}

	ddlNodePool = sync.Pool{
		New: func() interface{} { return &DDLNode{} },
	}
)

// releaseTree returns every PrimData and DDLNode in the subtree rooted at n
// to their pools. The caller must not use n, nor read anything reachable
// from it, after calling this — the usual contract for pooled values.
//
// n's Children and Properties backing arrays are kept (truncated to length
// 0, not discarded) so the next newDDLNode to draw n from the pool can
// append into them without reallocating.
func releaseTree(n *DDLNode) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		releaseTree(c)
	}
	if n.Values != nil {
		release(n.Values)
	}
	for _, p := range n.Properties {
		release(p.Value)
	}
	children, props := n.Children[:0], n.Properties[:0]
	*n = DDLNode{Children: children, Properties: props}
	ddlNodePool.Put(n)
}

// ParsePooled parses buffer exactly like ParseBytes, but returns any
// previously pooled tree (prev) to the pool first.
//
// Pools are safe for concurrent use per the sync.Pool contract, but a given
// returned *DDLNode must be done being read before it (or an ancestor
// passed as prev in a later call) is recycled — this function does not
// synchronize with readers of prev itself.
func ParsePooled(buffer []byte, prev *DDLNode) (*DDLNode, error) {
	if prev != nil {
		releaseTree(prev)
	}
	return ParseBytes(buffer)
}
