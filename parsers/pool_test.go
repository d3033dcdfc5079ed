package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePooledReleasesPreviousTree(t *testing.T) {
	first, err := ParsePooled([]byte(`Metric (key = "distance") { string { "meter" } }`), nil)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := ParsePooled([]byte(`Metric (key = "angle") { string { "radian" } }`), first)
	require.NoError(t, err)
	require.NotNil(t, second)

	require.Len(t, second.Children, 1)
	assert.Equal(t, "angle", second.Children[0].Properties[0].Value.String())
}

func TestReleaseTreeClearsNodeStructFields(t *testing.T) {
	root := newDDLNode(Identifier{Text: "DocumentRoot"}, nil, nil)
	child := newDDLNode(Identifier{Text: "Metric"}, nil, root)
	p := allocPrimData(String)
	p.setString("x")
	child.attachValue(p)

	releaseTree(root)
	// releaseTree zeroes each node's struct fields (keeping only the
	// truncated Children/Properties backing arrays) before pooling it.
	assert.NotNil(t, root)
	assert.Empty(t, root.NodeType.Text)
	assert.Empty(t, root.Children)
	assert.Nil(t, child.Values)
	assert.Nil(t, child.Parent)
}
