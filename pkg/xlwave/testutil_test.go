package xlwave

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fc is a fixture cell: an optional value and an optional fill color.
type fc struct {
	value any
	color string
}

// sheet is a named fixture worksheet.
type sheet struct {
	name string
	rows [][]fc
}

// newWorkbook builds an in-memory workbook with the sheets in order. The
// stored sheet dimensions are left at the excelize default.
func newWorkbook(t *testing.T, sheets ...sheet) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	styles := map[string]int{}
	first := true
	for _, sh := range sheets {
		name, rows := sh.name, sh.rows
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}

		for r, row := range rows {
			for c, cell := range row {
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				if cell.value != nil {
					require.NoError(t, f.SetCellValue(name, ref, cell.value))
				}
				if cell.color == "" {
					continue
				}
				id, ok := styles[cell.color]
				if !ok {
					id, err = f.NewStyle(&excelize.Style{
						Fill: excelize.Fill{Type: "pattern", Color: []string{cell.color}, Pattern: 1},
					})
					require.NoError(t, err)
					styles[cell.color] = id
				}
				require.NoError(t, f.SetCellStyle(name, ref, ref, id))
			}
		}
	}
	return f
}

// saveWorkbook writes the workbook to a temporary .xlsx file.
func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timing.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func n(v any) fc                 { return fc{value: v} }
func fill(color string) fc       { return fc{color: color} }
func val(v any, color string) fc { return fc{value: v, color: color} }

var empty = fc{}
