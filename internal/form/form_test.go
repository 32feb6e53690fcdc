package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billswift/stockroom/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantErr   error
		wantStock int
		wantValue float64
	}{
		{
			name:      "well-formed input",
			input:     Input{Name: "Stapler", Supplier: "OfficeMart", Stock: "12", Value: "120.50"},
			wantStock: 12,
			wantValue: 120.50,
		},
		{
			name:      "fractional stock floors",
			input:     Input{Name: "Pens", Supplier: "WriteWell", Stock: "3.9", Value: "10"},
			wantStock: 3,
			wantValue: 10,
		},
		{
			name:      "negative numbers clamp to zero",
			input:     Input{Name: "Pens", Supplier: "WriteWell", Stock: "-5", Value: "-2.5"},
			wantStock: 0,
			wantValue: 0,
		},
		{
			name:      "non-numeric input coerces to zero",
			input:     Input{Name: "Pens", Supplier: "WriteWell", Stock: "many", Value: "cheap"},
			wantStock: 0,
			wantValue: 0,
		},
		{
			name:      "blank numerics default to zero",
			input:     Input{Name: "Pens", Supplier: "WriteWell"},
			wantStock: 0,
			wantValue: 0,
		},
		{
			name:    "empty name rejected",
			input:   Input{Name: "   ", Supplier: "WriteWell", Stock: "1", Value: "1"},
			wantErr: types.ErrNameRequired,
		},
		{
			name:    "empty supplier rejected",
			input:   Input{Name: "Pens", Supplier: "", Stock: "1", Value: "1"},
			wantErr: types.ErrSupplierRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, it.Stock)
			assert.Equal(t, tt.wantValue, it.Value)
			assert.NotEmpty(t, it.ID, "blank ID gets a generated one")
		})
	}
}

func TestParseRetainsExplicitID(t *testing.T) {
	it, err := Parse(Input{ID: "existing-id", Name: "Pens", Supplier: "WriteWell", Stock: "1", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, "existing-id", it.ID)
}

func TestParseTrimsText(t *testing.T) {
	it, err := Parse(Input{Name: "  Pens  ", Supplier: "\tWriteWell ", Stock: "1", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Pens", it.Name)
	assert.Equal(t, "WriteWell", it.Supplier)
}

func TestUpsert(t *testing.T) {
	items := []types.Item{
		{ID: "a", Name: "one", Supplier: "s"},
		{ID: "b", Name: "two", Supplier: "s"},
	}

	updated, replaced := Upsert(items, types.Item{ID: "b", Name: "two-edited", Supplier: "s"})
	assert.True(t, replaced)
	require.Len(t, updated, 2)
	assert.Equal(t, "two-edited", updated[1].Name)
	assert.Equal(t, "two", items[1].Name, "input slice untouched")

	appended, replaced := Upsert(items, types.Item{ID: "c", Name: "three", Supplier: "s"})
	assert.False(t, replaced)
	assert.Len(t, appended, 3)
	assert.Len(t, items, 2)
}

func TestRemove(t *testing.T) {
	items := []types.Item{
		{ID: "a", Name: "one", Supplier: "s"},
		{ID: "b", Name: "two", Supplier: "s"},
	}

	remaining, removed := Remove(items, "a")
	assert.True(t, removed)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].ID)

	unchanged, removed := Remove(items, "nope")
	assert.False(t, removed)
	assert.Equal(t, items, unchanged)
}

func TestFind(t *testing.T) {
	items := []types.Item{{ID: "a", Name: "one", Supplier: "s"}}

	it, ok := Find(items, "a")
	assert.True(t, ok)
	assert.Equal(t, "one", it.Name)

	_, ok = Find(items, "missing")
	assert.False(t, ok)
}
