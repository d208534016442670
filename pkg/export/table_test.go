package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Columns: []string{"id_cpl", "deskripsi", "jumlah_indikator"},
		Rows: [][]string{
			{"CPL-01", "Mampu berpikir logis, kritis dan sistematis", "2"},
			{"CPL-02", "Mandiri", "0"},
		},
	}
}

func TestRenderCSVKeepsColumnOrder(t *testing.T) {
	out, err := RenderCSV(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id_cpl,deskripsi,jumlah_indikator", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "CPL-01,"))
	assert.True(t, strings.HasPrefix(lines[2], "CPL-02,"))
}

func TestRenderCSVRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"CPL-03"})

	_, err := RenderCSV(table)
	require.Error(t, err)

	_, err = RenderCSV(Table{})
	require.Error(t, err)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	out, err := RenderPDF(sampleTable(), "Kurikulum 2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestColumnWidthsFavourLongColumns(t *testing.T) {
	widths := columnWidths(sampleTable(), 270)

	require.Len(t, widths, 3)
	assert.Greater(t, widths[1], widths[0], "description column should be widest")
	assert.Greater(t, widths[1], widths[2])

	total := widths[0] + widths[1] + widths[2]
	assert.LessOrEqual(t, total, 270.0+0.01)
}
