package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// usedRange returns the last row and column (1-based) of any cell element in
// the worksheet part of a sheet. Cells that only carry a style count, which
// the stored dimension and the value based row readers both miss.
func usedRange(f *excelize.File, sheetName string) (lastRow, lastCol int, err error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return 0, 0, err
	}
	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return 0, 0, err
	}

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return 0, 0, err
	}
	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || relsXML == nil {
		return 0, 0, err
	}

	sheetPath, ok := parseWorkbookRels(relsXML, parseWorkbookSheets(workbookXML))[sheetName]
	if !ok {
		return 0, 0, nil
	}
	sheetXML, err := readZipFile(r, sheetPath)
	if err != nil || sheetXML == nil {
		return 0, 0, err
	}
	return scanCellRefs(sheetXML)
}

// scanCellRefs walks <row>/<c> elements and tracks the largest coordinates.
// Rows and cells without an r attribute follow their predecessor.
func scanCellRefs(data []byte) (lastRow, lastCol int, err error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	row, col := 0, 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "row":
			row++
			col = 0
			if ref := attrValue(se, "r"); ref != "" {
				n, err := strconv.Atoi(ref)
				if err != nil {
					return 0, 0, fmt.Errorf("row %q: %w", ref, err)
				}
				row = n
			}
		case "c":
			col++
			if ref := attrValue(se, "r"); ref != "" {
				c, r, err := excelize.CellNameToCoordinates(ref)
				if err != nil {
					return 0, 0, err
				}
				row, col = r, c
			}
			lastRow = max(lastRow, row)
			lastCol = max(lastCol, col)
		}
	}

	return lastRow, lastCol, nil
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

// parseWorkbookSheets maps relationship IDs to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels maps sheet names to worksheet part paths.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attrValue(se, "Id"), attrValue(se, "Target")
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
