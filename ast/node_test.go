package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiforge/ftml/token"
)

func TestTextNodeJSON(t *testing.T) {
	n := NewText("hello", token.NewSpan(2, 5))
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"element":"text","span":[2,7],"value":"hello"}`, string(b))
}

func TestContainerNodeJSON(t *testing.T) {
	child := NewText("link", token.NewSpan(10, 4))
	n := NewContainer(Anchor, map[string]string{"href": "/foo"}, []*Node{child}, token.NewSpan(0, 20))
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"element":"anchor",
		"attributes":{"href":"/foo"},
		"children":[{"element":"text","span":[10,14],"value":"link"}],
		"span":[0,20]
	}`, string(b))
}

func TestLeafNodeNoChildren(t *testing.T) {
	n := NewLeaf(LineBreak, nil, token.NewSpan(5, 1))
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"element":"line-break","span":[5,6]}`, string(b))
}
