package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/internal/fixtures"
	"github.com/wikiforge/ftml/settings"
)

func TestLoadCoreFixtures(t *testing.T) {
	cases, err := fixtures.Load("../../test")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	names := make(map[string]bool, len(cases))
	for _, c := range cases {
		names[c.Name] = true
		assert.NotEmpty(t, c.Input)
		if _, statErr := os.Stat(filepath.Join("../../test", c.Group, c.Name, "errors.json")); statErr == nil {
			assert.NotEmpty(t, c.ExpectedErrors, "case %s/%s ships errors.json, so its expected errors should be loaded", c.Group, c.Name)
		} else {
			assert.Empty(t, c.ExpectedErrors, "case %s/%s should default to no expected errors unless errors.json is present", c.Group, c.Name)
		}
	}
	assert.True(t, names["bold-closed"])
	assert.True(t, names["unknown-block"])
}

func TestRunAllMatchesExpectations(t *testing.T) {
	cases, err := fixtures.Load("../../test")
	require.NoError(t, err)

	cat, err := catalogue.Default(nil)
	require.NoError(t, err)

	results, err := fixtures.RunAll(context.Background(), cases, cat, settings.Default())
	require.NoError(t, err)
	require.Len(t, results, len(cases))

	for _, r := range results {
		t.Run(r.Case.Group+"/"+r.Case.Name, func(t *testing.T) {
			require.NotNil(t, r.Tree)
			if r.Case.ExpectedTree != nil {
				assert.Equal(t, r.Case.ExpectedTree, r.Tree)
			}
			assert.Len(t, r.Errors, len(r.Case.ExpectedErrors))
			for i, want := range r.Case.ExpectedErrors {
				assert.Equal(t, want.Kind, r.Errors[i].Kind)
				assert.Equal(t, want.Span, r.Errors[i].Span)
				assert.Equal(t, want.Token, r.Errors[i].Token)
			}
		})
	}
}
