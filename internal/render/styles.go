package render

import "github.com/charmbracelet/lipgloss"

// Row stock states used for highlighting. Out-of-stock wins over low-stock.
const (
	RowStateOut = "out"
	RowStateLow = "low"
	RowStateOK  = ""
)

// Row highlight styles. Out-of-stock rows render red, low-stock rows
// yellow, healthy rows unstyled.
var (
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	plainStyle  = lipgloss.NewStyle()
)

// RowState classifies an item's stock against the low-stock threshold.
func RowState(stock, threshold int) string {
	switch {
	case stock == 0:
		return RowStateOut
	case stock < threshold:
		return RowStateLow
	default:
		return RowStateOK
	}
}

// StyleFor returns the highlight style for a stock state.
func StyleFor(state string) lipgloss.Style {
	return rowStyle(state)
}

// rowStyle returns the lipgloss style for a stock state.
func rowStyle(state string) lipgloss.Style {
	switch state {
	case RowStateOut:
		return outStyle
	case RowStateLow:
		return lowStyle
	default:
		return plainStyle
	}
}
