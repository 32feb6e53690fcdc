package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampStock(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want int
	}{
		{name: "integer passes through", raw: 5, want: 5},
		{name: "fraction floors down", raw: 3.9, want: 3},
		{name: "negative clamps to zero", raw: -4, want: 0},
		{name: "negative fraction clamps to zero", raw: -0.5, want: 0},
		{name: "zero stays zero", raw: 0, want: 0},
		{name: "NaN coerces to zero", raw: math.NaN(), want: 0},
		{name: "positive infinity coerces to zero", raw: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampStock(tt.raw))
		})
	}
}

func TestClampValue(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "positive passes through", raw: 230.5, want: 230.5},
		{name: "fraction is not floored", raw: 9.99, want: 9.99},
		{name: "negative clamps to zero", raw: -12, want: 0},
		{name: "zero stays zero", raw: 0, want: 0},
		{name: "NaN coerces to zero", raw: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampValue(tt.raw))
		})
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr error
	}{
		{
			name: "well-formed item",
			item: Item{ID: "a", Name: "Stapler", Supplier: "OfficeMart", Stock: 3, Value: 120},
		},
		{
			name:    "empty name rejected",
			item:    Item{ID: "a", Name: "", Supplier: "OfficeMart"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "whitespace name rejected",
			item:    Item{ID: "a", Name: "   ", Supplier: "OfficeMart"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty supplier rejected",
			item:    Item{ID: "a", Name: "Stapler", Supplier: "\t"},
			wantErr: ErrSupplierRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemWorth(t *testing.T) {
	it := Item{Stock: 4, Value: 2.5}
	assert.Equal(t, 10.0, it.Worth())

	empty := Item{Stock: 0, Value: 99}
	assert.Equal(t, 0.0, empty.Worth())
}
