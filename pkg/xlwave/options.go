// Package xlwave converts colored spreadsheet timing diagrams into
// WaveDrom style waveform descriptions.
package xlwave

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// ReadOptions configures a worksheet read.
type ReadOptions struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// Header specifies whether row 1 is a header naming the "name" and
	// "group" columns. If nil, defaults to true.
	Header *bool
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultReadOptions returns default read options.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{}
}

// UseHeader returns whether the first row is a header.
func (o ReadOptions) UseHeader() bool {
	if o.Header != nil {
		return *o.Header
	}
	return true
}

func (o ReadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// spreadsheetExts lists the extensions accepted by New.
var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
	".xls":  true,
}

// IsSpreadsheet reports whether path has a spreadsheet extension.
func IsSpreadsheet(path string) bool {
	return spreadsheetExts[strings.ToLower(filepath.Ext(path))]
}
