package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/billswift/stockroom/internal/form"
	"github.com/billswift/stockroom/pkg/types"
)

// Form field order.
const (
	fieldName = iota
	fieldSupplier
	fieldStock
	fieldValue
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Supplier", "Stock", "Value"}

// formModel is the add/edit form. Editing retains the item's ID; adding
// leaves it blank so a new one is assigned on submit.
type formModel struct {
	id      string
	editing bool
	inputs  [fieldCount]textinput.Model
	focus   int
}

// newFormModel builds a form, pre-filled from the item when editing.
func newFormModel(it types.Item, editing bool) formModel {
	f := formModel{id: it.ID, editing: editing}
	for i := range f.inputs {
		in := textinput.New()
		in.CharLimit = 64
		in.Width = 32
		in.Prompt = ""
		f.inputs[i] = in
	}
	if editing {
		f.inputs[fieldName].SetValue(it.Name)
		f.inputs[fieldSupplier].SetValue(it.Supplier)
		f.inputs[fieldStock].SetValue(strconv.Itoa(it.Stock))
		f.inputs[fieldValue].SetValue(strconv.FormatFloat(it.Value, 'f', -1, 64))
	} else {
		f.inputs[fieldStock].SetValue("0")
		f.inputs[fieldValue].SetValue("0")
	}
	return f
}

// focusCmd focuses the first field.
func (f *formModel) focusCmd() tea.Cmd {
	return f.inputs[fieldName].Focus()
}

// update handles one key. It reports done=true when the form closes; submit
// is nil on cancel and carries the raw input on submit.
func (f *formModel) update(msg tea.KeyMsg) (done bool, submit *form.Input, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil, nil
	case "enter":
		if f.focus < fieldCount-1 {
			return false, nil, f.advance(f.focus + 1)
		}
		in := &form.Input{
			ID:       f.id,
			Name:     f.inputs[fieldName].Value(),
			Supplier: f.inputs[fieldSupplier].Value(),
			Stock:    f.inputs[fieldStock].Value(),
			Value:    f.inputs[fieldValue].Value(),
		}
		return true, in, nil
	case "tab", "down":
		return false, nil, f.advance((f.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return false, nil, f.advance((f.focus + fieldCount - 1) % fieldCount)
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, nil, cmd
}

// advance moves focus to the given field.
func (f *formModel) advance(to int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = to
	return f.inputs[f.focus].Focus()
}
