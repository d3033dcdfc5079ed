package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openddl/openddl-go/parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintTreeRendersParsedNode(t *testing.T) {
	root, err := parsers.ParseBytes([]byte(`Metric (key = "distance") { string { "meter" } }`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FprintTree(&buf, root))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Metric"))
	assert.True(t, strings.Contains(out, "distance"))
	assert.True(t, strings.Contains(out, "meter"))
	assert.True(t, strings.Contains(out, `"type": "string"`))
}

func TestFprintTreeNilRootPrintsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTree(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}
