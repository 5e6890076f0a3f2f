package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// tableCellAttrs maps a table-column marker kind to the attributes its
// cell carries (alignment, or header marking for TableColumnTitle).
func tableCellAttrs(k token.Kind) map[string]string {
	switch k {
	case token.KindTableColumnLeft:
		return map[string]string{"align": "left"}
	case token.KindTableColumnRight:
		return map[string]string{"align": "right"}
	case token.KindTableColumnCenter:
		return map[string]string{"align": "center"}
	case token.KindTableColumnTitle:
		return map[string]string{"header": "true"}
	default:
		return nil
	}
}

func isTableColumnKind(k token.Kind) bool {
	switch k {
	case token.KindTableColumn, token.KindTableColumnLeft, token.KindTableColumnRight,
		token.KindTableColumnCenter, token.KindTableColumnTitle:
		return true
	}
	return false
}

// parseTable consumes a run of consecutive lines that each open with a
// table-column marker ("||", "||<", "||>", "||=", "||~") into a single
// Table container, one TableRow per line and one TableCell per marker
// within the line.
func (p *Parser) parseTable() *ast.Node {
	start := p.peek().Span
	var rows []*ast.Node

	for isTableColumnKind(p.peek().Kind) {
		rowStart := p.peek().Span
		var cells []*ast.Node

		for isTableColumnKind(p.peek().Kind) {
			marker := p.advance()
			p.skipSpace()

			var children []*ast.Node
			for {
				k := p.peek().Kind
				if isTableColumnKind(k) || k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
					break
				}
				node := p.parseInline()
				if node == nil {
					break
				}
				children = appendInline(children, node)
			}

			cellSpan := marker.Span
			if len(children) > 0 {
				cellSpan = marker.Span.Join(children[len(children)-1].Span)
			}
			cells = append(cells, ast.NewContainer(ast.TableCell, tableCellAttrs(marker.Kind), children, cellSpan))
		}

		rowSpan := rowStart
		if len(cells) > 0 {
			rowSpan = rowStart.Join(cells[len(cells)-1].Span)
		}
		rows = append(rows, ast.NewContainer(ast.TableRow, nil, cells, rowSpan))

		if p.peek().Kind == token.KindLineBreak {
			p.advance()
		} else {
			break
		}
	}

	span := start
	if len(rows) > 0 {
		span = start.Join(rows[len(rows)-1].Span)
	}
	return ast.NewContainer(ast.Table, nil, rows, span)
}
