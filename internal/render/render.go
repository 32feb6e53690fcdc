// Package render materializes derived inventory views for the terminal and
// for HTML reports. It holds no state beyond formatting configuration; the
// view it receives is already filtered and sorted.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

// Renderer formats inventory views. Color applies the lipgloss row
// highlighting; Compact drops the blank line between the stats block and the
// table and narrows cell padding.
type Renderer struct {
	Threshold int
	Currency  *CurrencyFormatter
	Color     bool
	Compact   bool
}

// tableHeaders in display order.
var tableHeaders = []string{"NAME", "SUPPLIER", "STOCK", "VALUE"}

// numeric columns are right-aligned.
var rightAligned = map[int]bool{2: true, 3: true}

// Table renders one row per item with name, supplier, right-aligned stock,
// and the currency-formatted unit value.
func (r Renderer) Table(view []types.Item) string {
	if len(view) == 0 {
		return "No items match the current filters.\n"
	}

	rows := make([][]string, len(view))
	for i, it := range view {
		rows[i] = []string{
			it.Name,
			it.Supplier,
			strconv.Itoa(it.Stock),
			r.Currency.Format(it.Value),
		}
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := "  "
	if r.Compact {
		gap = " "
	}

	var sb strings.Builder
	sb.WriteString(r.styleLine(headerLine(widths, gap), headerStyle, r.Color))
	for i, row := range rows {
		line := formatRow(row, widths, gap)
		style := rowStyle(RowState(view[i].Stock, r.Threshold))
		sb.WriteString(r.styleLine(line, style, r.Color))
	}
	sb.WriteString(fmt.Sprintf("Total: %d item(s)\n", len(view)))
	return sb.String()
}

// Stats renders the aggregate block computed from the full collection.
func (r Renderer) Stats(s query.Summary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("SKUs: %d", s.SKUs))
	sb.WriteString(fmt.Sprintf("  Units: %d", s.Units))
	sb.WriteString(fmt.Sprintf("  Worth: %s\n", r.Currency.Format(s.Worth)))
	return sb.String()
}

// Report renders the stats block followed by the table.
func (r Renderer) Report(items, view []types.Item) string {
	sep := "\n"
	if r.Compact {
		sep = ""
	}
	return r.Stats(query.Stats(items)) + sep + r.Table(view)
}

// styleLine applies a lipgloss style to a line when color output is on.
func (r Renderer) styleLine(line string, style interface{ Render(...string) string }, color bool) string {
	if !color {
		return line + "\n"
	}
	return style.Render(line) + "\n"
}

// headerLine formats the column headers.
func headerLine(widths []int, gap string) string {
	cells := make([]string, len(tableHeaders))
	copy(cells, tableHeaders)
	return formatRow(cells, widths, gap)
}

// formatRow pads cells to their column width, right-aligning numeric
// columns.
func formatRow(cells []string, widths []int, gap string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if rightAligned[i] {
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
	}
	return strings.TrimRight(strings.Join(parts, gap), " ")
}
