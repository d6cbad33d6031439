package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelRoundTrip(t *testing.T) {
	buf, err := Excel("Asset Report",
		[]string{"Asset Code", "Item Name"},
		[][]string{
			{"AST-1", "Printer"},
			{"AST-2", "Router"},
		})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Asset Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Asset Code", "Item Name"}, rows[0])
	assert.Equal(t, []string{"AST-2", "Router"}, rows[2])
}

func TestPDF(t *testing.T) {
	buf, err := PDF("Movement Report",
		[]string{"ID", "Asset Code", "To Location"},
		[][]string{{"1", "AST-1", "Warehouse"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLabel(t *testing.T) {
	buf, err := Label("AST-20250901143157", "Dell Latitude 5520")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
