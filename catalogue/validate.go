package catalogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// build validates src and constructs the immutable Catalogue, or returns
// a *ConfigError describing the first problem found. Each block is checked
// in this order: struct-tag validation, html_attributes only with
// map/value+map heads, every argument default satisfies enum/min/max, and
// finally its name and aliases against those of blocks already seen.
func build(src source) (*Catalogue, error) {
	blocks := make(map[string]*BlockSpec, len(src.Blocks))
	byAlias := make(map[string]*BlockSpec)

	for name, spec := range src.Blocks {
		spec := spec
		spec.Name = strings.ToLower(name)

		if err := structValidator.Struct(&spec); err != nil {
			return nil, NewConfigError(IssueValidation, fmt.Errorf("block %q: %w", name, err))
		}

		if spec.HTMLAttributes && spec.Head != HeadMap && spec.Head != HeadValueMap {
			return nil, NewConfigError(IssueHTMLAttributesHead, fmt.Errorf(
				"block %q: html_attributes requires head=map or head=value+map, got %q",
				spec.Name, spec.Head))
		}

		for argName, arg := range spec.Arguments {
			if err := validateArgumentDefault(arg); err != nil {
				return nil, NewConfigError(IssueDefaultViolatesConstraint, fmt.Errorf(
					"block %q argument %q: %w", spec.Name, argName, err))
			}
		}

		stored := spec
		blocks[spec.Name] = &stored

		aliasSet := map[string]bool{}
		if !spec.ExcludeName {
			aliasSet[spec.Name] = true
		}
		for _, a := range spec.Aliases {
			aliasSet[strings.ToLower(a)] = true
		}

		for alias := range aliasSet {
			if existing, ok := byAlias[alias]; ok {
				return nil, NewConfigError(IssueAliasCollision, fmt.Errorf(
					"alias %q claimed by both %q and %q", alias, existing.Name, spec.Name))
			}
			byAlias[alias] = &stored
		}
	}

	return &Catalogue{blocks: blocks, byAlias: byAlias}, nil
}

// validateArgumentDefault checks that arg.Default, when present, satisfies
// arg.Enum and arg.Min/Max. List types (trailing "[]") are not constrained
// here: enum/min/max apply to scalar element values and a multi-valued
// default would need per-element parsing the catalogue format doesn't
// define, so it is accepted verbatim.
func validateArgumentDefault(arg ArgumentSpec) error {
	if arg.Default == "" {
		return nil
	}
	if strings.HasSuffix(arg.Type, "[]") {
		return nil
	}

	if len(arg.Enum) > 0 {
		found := false
		for _, e := range arg.Enum {
			if e == arg.Default {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("default %q not in enum %v", arg.Default, arg.Enum)
		}
	}

	if arg.Min != nil || arg.Max != nil {
		switch arg.Type {
		case "int", "float":
			n, err := strconv.ParseFloat(arg.Default, 64)
			if err != nil {
				return fmt.Errorf("default %q is not numeric: %w", arg.Default, err)
			}
			if arg.Min != nil && n < *arg.Min {
				return fmt.Errorf("default %v below min %v", n, *arg.Min)
			}
			if arg.Max != nil && n > *arg.Max {
				return fmt.Errorf("default %v above max %v", n, *arg.Max)
			}
		}
	}

	return nil
}
