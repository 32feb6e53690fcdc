package portable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billswift/stockroom/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	items := []types.Item{
		{ID: "a", Name: "A4 Paper Ream", Supplier: "Acme Traders", Stock: 25, Value: 230},
		{ID: "b", Name: "Stapler No. 10", Supplier: "OfficeMart", Stock: 0, Value: 120.5},
	}

	data, err := Export(items)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "["), "top-level array")
	assert.Contains(t, string(data), "\n  ", "pretty-printed")

	got, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestExportEmptyCollection(t *testing.T) {
	data, err := Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestImportRejectsNonArray(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "object", data: `{"not":"an array"}`},
		{name: "string", data: `"items"`},
		{name: "number", data: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Import([]byte(tt.data))
			assert.ErrorIs(t, err, ErrNotArray)
			assert.Nil(t, got)
		})
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	got, err := Import([]byte(`[{"name": "broken"`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotArray)
	assert.Nil(t, got)
}

func TestImportCoercesAndDefaults(t *testing.T) {
	doc := `[
	  {"name": "Pens", "supplier": "WriteWell", "stock": 3.9, "value": -2},
	  {"id": "keep-me", "name": "Paper", "supplier": "Acme", "stock": -1, "value": 9.99, "color": "blue"}
	]`

	got, err := Import([]byte(doc))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.NotEmpty(t, got[0].ID, "missing id is assigned")
	assert.Equal(t, 3, got[0].Stock, "stock floors")
	assert.Equal(t, 0.0, got[0].Value, "negative value clamps")

	assert.Equal(t, "keep-me", got[1].ID, "existing id preserved")
	assert.Equal(t, 0, got[1].Stock)
	assert.Equal(t, 9.99, got[1].Value)
}

func TestImportEmptyArray(t *testing.T) {
	got, err := Import([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	require.NoError(t, WriteFile(path, []byte("[]")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// Overwrite replaces the previous content wholesale.
	require.NoError(t, WriteFile(path, []byte(`[{"id":"a"}]`)))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
