package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(10)
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	s := query.Stats(m.items)
	sb.WriteString(titleStyle.Render("Stockroom"))
	sb.WriteString(fmt.Sprintf("  SKUs: %d  Units: %d  Worth: %s\n", s.SKUs, s.Units, m.currency.Format(s.Worth)))

	sb.WriteString(fmt.Sprintf("Search: %s  %s\n", m.search.View(), m.filterSummary()))
	if !m.compact {
		sb.WriteString("\n")
	}

	switch m.mode {
	case modeForm:
		sb.WriteString(m.formView())
	case modeConfirmDelete:
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
		sb.WriteString(promptStyle.Render(fmt.Sprintf("Delete %q? (y/N)", m.pending.Name)))
		sb.WriteString("\n")
	default:
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render(m.helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

// filterSummary describes the active filters and sort order.
func (m Model) filterSummary() string {
	supplier := m.filters.Supplier
	if supplier == "" {
		supplier = "all"
	}
	stock := m.filters.Stock
	if stock == types.StockAny {
		stock = "any"
	}
	return fmt.Sprintf("[supplier: %s | stock: %s | sort: %s %s]",
		supplier, stock, m.sortKey, m.sortDir)
}

// formView renders the add/edit form fields.
func (m Model) formView() string {
	var sb strings.Builder
	if m.form.editing {
		sb.WriteString(titleStyle.Render("Edit Item"))
	} else {
		sb.WriteString(titleStyle.Render("Add Item"))
	}
	sb.WriteString("\n")
	for i, in := range m.form.inputs {
		cursor := "  "
		if i == m.form.focus {
			cursor = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%s%s\n", cursor, labelStyle.Render(fieldLabels[i]), in.View()))
	}
	return sb.String()
}

// helpLine lists the key bindings for the current mode.
func (m Model) helpLine() string {
	switch m.mode {
	case modeForm:
		return "enter next/submit · tab/shift+tab move · esc cancel"
	case modeConfirmDelete:
		return "y confirm · any other key cancels"
	default:
		return "/ search · tab stock filter · p supplier · 1-4 sort · c compact · a add · e edit · d delete · q quit"
	}
}
