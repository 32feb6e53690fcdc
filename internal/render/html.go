package render

import (
	"fmt"
	"strings"

	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

// markupEscaper rewrites the characters that break out of HTML text and
// attribute contexts. Ampersand must be listed first so already-escaped
// entities are not produced from replacement output.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeMarkup escapes user-supplied text for insertion into HTML markup.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// HTMLReport renders a standalone HTML snapshot of the view: the stats block
// for the full collection followed by one table row per item, with low and
// out-of-stock rows classed for styling. All user-supplied text is escaped.
func (r Renderer) HTMLReport(items, view []types.Item) string {
	s := query.Stats(items)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n<title>Inventory</title>\n")
	sb.WriteString(`<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
td.num { text-align: right; }
tr.low { background: #fff8e1; }
tr.out { background: #ffebee; }
</style>
`)
	sb.WriteString("</head>\n<body>\n")

	sb.WriteString(fmt.Sprintf("<p>SKUs: %d &middot; Units: %d &middot; Worth: %s</p>\n",
		s.SKUs, s.Units, EscapeMarkup(r.Currency.Format(s.Worth))))

	sb.WriteString("<table>\n<tr><th>Name</th><th>Supplier</th><th>Stock</th><th>Value</th></tr>\n")
	for _, it := range view {
		cls := ""
		if state := RowState(it.Stock, r.Threshold); state != RowStateOK {
			cls = fmt.Sprintf(" class=%q", state)
		}
		sb.WriteString(fmt.Sprintf("<tr%s><td>%s</td><td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td></tr>\n",
			cls,
			EscapeMarkup(it.Name),
			EscapeMarkup(it.Supplier),
			it.Stock,
			EscapeMarkup(r.Currency.Format(it.Value)),
		))
	}
	sb.WriteString("</table>\n</body>\n</html>\n")
	return sb.String()
}
