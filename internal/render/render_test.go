package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

// testRenderer builds a color-free renderer with the default threshold.
func testRenderer(t *testing.T) Renderer {
	t.Helper()

	cf, err := NewCurrencyFormatter(types.DefaultLocale, types.DefaultCurrency)
	require.NoError(t, err)
	return Renderer{Threshold: types.DefaultLowStockThreshold, Currency: cf}
}

func TestRowState(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      string
	}{
		{name: "zero stock is out", stock: 0, threshold: 10, want: RowStateOut},
		{name: "below threshold is low", stock: 5, threshold: 10, want: RowStateLow},
		{name: "one unit is low", stock: 1, threshold: 10, want: RowStateLow},
		{name: "at threshold is ok", stock: 10, threshold: 10, want: RowStateOK},
		{name: "above threshold is ok", stock: 20, threshold: 10, want: RowStateOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RowState(tt.stock, tt.threshold))
		})
	}
}

func TestTable(t *testing.T) {
	r := testRenderer(t)
	out := r.Table([]types.Item{
		{ID: "a", Name: "Stapler", Supplier: "OfficeMart", Stock: 3, Value: 120},
		{ID: "b", Name: "Pens", Supplier: "WriteWell", Stock: 42, Value: 175},
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Stapler")
	assert.Contains(t, out, "OfficeMart")
	assert.Contains(t, out, "Total: 2 item(s)")

	// Single-digit stock is right-aligned against the two-digit one.
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], " 3 ")
	assert.Contains(t, lines[2], "42 ")
}

func TestTableEmptyView(t *testing.T) {
	r := testRenderer(t)
	assert.Contains(t, r.Table(nil), "No items match")
}

func TestStats(t *testing.T) {
	r := testRenderer(t)
	out := r.Stats(query.Summary{SKUs: 3, Units: 14, Worth: 65})
	assert.Contains(t, out, "SKUs: 3")
	assert.Contains(t, out, "Units: 14")
	assert.Contains(t, out, "65.00")
}

func TestCurrencyFormatter(t *testing.T) {
	cf, err := NewCurrencyFormatter("en-IN", "INR")
	require.NoError(t, err)

	assert.Contains(t, cf.Format(230), "230.00", "two decimal places")
	assert.Equal(t, cf.Format(0), cf.Format(-5), "negative renders as zero")
}

func TestCurrencyFormatterRejectsBadInput(t *testing.T) {
	_, err := NewCurrencyFormatter("not a locale!", "INR")
	assert.Error(t, err)

	_, err = NewCurrencyFormatter("en-IN", "RUPEES")
	assert.Error(t, err)
}

func TestEscapeMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "angle brackets", in: `<script>`, want: "&lt;script&gt;"},
		{name: "ampersand", in: "A&B", want: "A&amp;B"},
		{name: "quotes", in: `"x" 'y'`, want: "&quot;x&quot; &#039;y&#039;"},
		{name: "ampersand not double-escaped", in: "&lt;", want: "&amp;lt;"},
		{name: "plain text untouched", in: "Stapler No. 10", want: "Stapler No. 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeMarkup(tt.in))
		})
	}
}

func TestHTMLReport(t *testing.T) {
	r := testRenderer(t)
	items := []types.Item{
		{ID: "a", Name: `<b>Bold & "Daring"</b>`, Supplier: "O'Mart", Stock: 0, Value: 10},
		{ID: "b", Name: "Pens", Supplier: "WriteWell", Stock: 5, Value: 20},
		{ID: "c", Name: "Paper", Supplier: "Acme", Stock: 50, Value: 30},
	}

	out := r.HTMLReport(items, items)

	assert.NotContains(t, out, `<b>Bold`)
	assert.Contains(t, out, "&lt;b&gt;Bold &amp; &quot;Daring&quot;&lt;/b&gt;")
	assert.Contains(t, out, "O&#039;Mart")
	assert.Contains(t, out, `<tr class="out">`)
	assert.Contains(t, out, `<tr class="low">`)
	assert.Contains(t, out, "SKUs: 3")
}
