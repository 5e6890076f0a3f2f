package diag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiforge/ftml/token"
)

func TestParseErrorJSON(t *testing.T) {
	e := NewToken(NoSuchBlock, token.NewSpan(3, 5), "widget")
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"no-such-block","span":[3,8],"token":"widget"}`, string(b))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "no-such-block", NoSuchBlock.String())
	assert.Equal(t, "recursion-limit", RecursionLimit.String())
}
