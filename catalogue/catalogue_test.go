package catalogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogueLoads(t *testing.T) {
	cat, err := Default(nil)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Greater(t, cat.Len(), 20)
}

func TestResolveCaseInsensitiveAndAlias(t *testing.T) {
	cat, err := Default(nil)
	require.NoError(t, err)

	spec, ok := cat.Resolve("DIV")
	require.True(t, ok)
	assert.Equal(t, "div", spec.Name)

	spec, ok = cat.Resolve("Quote")
	require.True(t, ok)
	assert.Equal(t, "blockquote", spec.Name)

	_, ok = cat.Resolve("nonexistent-block")
	assert.False(t, ok)
}

func TestAliasCollisionFailsFast(t *testing.T) {
	src := `
[blocks.a]
name = "a"
head = "none"
body = "none"

[blocks.b]
name = "b"
aliases = ["a"]
head = "none"
body = "none"
`
	_, err := LoadBytes([]byte(src), nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, IssueAliasCollision, cfgErr.Issue)
}

func TestHTMLAttributesRequiresMapHead(t *testing.T) {
	src := `
[blocks.a]
name = "a"
head = "value"
body = "none"
html_attributes = true
`
	_, err := LoadBytes([]byte(src), nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, IssueHTMLAttributesHead, cfgErr.Issue)
}

func TestDefaultMustSatisfyEnum(t *testing.T) {
	src := `
[blocks.a]
name = "a"
head = "map"
body = "none"

[blocks.a.arguments.style]
type = "string"
enum = ["x", "y"]
default = "z"
`
	_, err := LoadBytes([]byte(src), nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, IssueDefaultViolatesConstraint, cfgErr.Issue)
}

func TestDefaultMustSatisfyMinMax(t *testing.T) {
	src := `
[blocks.a]
name = "a"
head = "map"
body = "none"

[blocks.a.arguments.n]
type = "int"
default = "5"
min = 10.0
`
	_, err := LoadBytes([]byte(src), nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, IssueDefaultViolatesConstraint, cfgErr.Issue)
}

func TestMalformedTOMLFailsFast(t *testing.T) {
	_, err := LoadBytes([]byte("not valid [[[ toml"), nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "catalogue:"))
}
