// Package fixtures loads and runs the on-disk test corpus laid out as
// test/<group>/<case>/{input.ftml,tree.json,errors.json}.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/wikiforge/ftml"
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/settings"
)

// Case is one loaded test/<group>/<case> directory.
type Case struct {
	Group string
	Name  string

	Input          string
	ExpectedTree   *ast.SyntaxTree
	ExpectedErrors []diag.ParseError
}

// Result is what running a Case against the parser produced.
type Result struct {
	Case   Case
	Tree   *ast.SyntaxTree
	Errors []diag.ParseError
}

// Load walks root (normally "test") and returns every discovered case.
// A case missing errors.json is treated as expecting zero diagnostics,
// per the fixture contract.
func Load(root string) ([]Case, error) {
	groups, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read group dir: %w", err)
	}

	var cases []Case
	for _, g := range groups {
		if !g.IsDir() {
			continue
		}
		groupDir := filepath.Join(root, g.Name())
		entries, err := os.ReadDir(groupDir)
		if err != nil {
			return nil, fmt.Errorf("fixtures: read case dir: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			c, err := loadCase(groupDir, g.Name(), e.Name())
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		}
	}
	return cases, nil
}

func loadCase(groupDir, group, name string) (Case, error) {
	caseDir := filepath.Join(groupDir, name)

	input, err := os.ReadFile(filepath.Join(caseDir, "input.ftml"))
	if err != nil {
		return Case{}, fmt.Errorf("fixtures: %s/%s: %w", group, name, err)
	}

	c := Case{Group: group, Name: name, Input: string(input)}

	treeBytes, err := os.ReadFile(filepath.Join(caseDir, "tree.json"))
	if err == nil {
		var tree ast.SyntaxTree
		if err := json.Unmarshal(treeBytes, &tree); err != nil {
			return Case{}, fmt.Errorf("fixtures: %s/%s: decode tree.json: %w", group, name, err)
		}
		c.ExpectedTree = &tree
	} else if !os.IsNotExist(err) {
		return Case{}, fmt.Errorf("fixtures: %s/%s: %w", group, name, err)
	}

	errBytes, err := os.ReadFile(filepath.Join(caseDir, "errors.json"))
	if err == nil {
		if err := json.Unmarshal(errBytes, &c.ExpectedErrors); err != nil {
			return Case{}, fmt.Errorf("fixtures: %s/%s: decode errors.json: %w", group, name, err)
		}
	} else if !os.IsNotExist(err) {
		return Case{}, fmt.Errorf("fixtures: %s/%s: %w", group, name, err)
	}

	return c, nil
}

// RunAll parses every case concurrently against one shared catalogue,
// demonstrating that a *catalogue.Catalogue is safe to read from many
// goroutines at once. It fails fast: the first per-case error cancels
// ctx and aborts the remaining goroutines.
func RunAll(ctx context.Context, cases []Case, cat *catalogue.Catalogue, st *settings.Settings) ([]Result, error) {
	results := make([]Result, len(cases))

	group, ctx := errgroup.WithContext(ctx)
	for i, c := range cases {
		i, c := i, c
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			tree, errs := ftml.Parse(c.Input, cat, st, nil)
			results[i] = Result{Case: c, Tree: tree, Errors: errs}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
