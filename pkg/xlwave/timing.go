package xlwave

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/parser"
	"github.com/xuri/excelize/v2"
)

// Timing holds the signals read from one worksheet.
//
// A read pass builds its state from scratch and replaces the previous state
// only when it succeeds, so a failed read leaves the instance unchanged.
type Timing struct {
	mu     sync.RWMutex
	result *parser.Result
}

// New creates a Timing. When input is non-empty it must name a spreadsheet
// file, which is read with opts.
func New(input string, opts ReadOptions) (*Timing, error) {
	t := &Timing{}
	if input == "" {
		return t, nil
	}
	if !IsSpreadsheet(input) {
		return nil, fmt.Errorf("%w: %q is not a spreadsheet", ErrInvalidInputKind, input)
	}
	if err := t.ReadXLS(input, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadXLS opens a workbook and reads one of its sheets.
func (t *Timing) ReadXLS(path string, opts ReadOptions) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", ErrFileNotFound, err)
		}
		return &FileLoadError{Path: path, Err: err}
	}
	defer f.Close()

	return t.ReadFile(f, opts)
}

// ReadFile reads one sheet of an already opened workbook.
func (t *Timing) ReadFile(f *excelize.File, opts ReadOptions) error {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return NewReadError("", "sheet", ErrSheetNotFound)
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return NewReadError(sheetName, "sheet", ErrSheetNotFound)
	}

	grid, err := parser.ExtractGrid(f, sheetName, opts.logger())
	if err != nil {
		return NewReadError(sheetName, "cells", err)
	}

	opts.logger().Debug("worksheet loaded",
		"sheet", sheetName,
		"rows", grid.Rows(),
		"cols", grid.Cols(),
	)
	t.read(grid, opts.UseHeader(), opts.logger().With("sheet", sheetName))
	return nil
}

// ReadGrid reads signals from an in-memory grid.
func (t *Timing) ReadGrid(g parser.Grid, header bool) {
	t.read(g, header, slog.Default())
}

func (t *Timing) read(g parser.Grid, header bool, logger *slog.Logger) {
	h := models.DefaultHeader()
	if header {
		h = parser.ResolveHeader(g)
	}
	res := parser.Interpret(g, h, header)

	for _, name := range res.Duplicates {
		logger.Debug("duplicate signal row ignored", "signal", name)
	}
	logger.Debug("worksheet interpreted",
		"name_col", h.Name,
		"start_col", h.StartCol,
		"signals", len(res.Signals),
		"bindings", res.Bindings.Len(),
		"colors", res.Symbols.Len(),
	)

	t.mu.Lock()
	t.result = res
	t.mu.Unlock()
}

// GetDiagram returns the diagram for the named signals in the given order.
// Names that were not read are omitted. A nil list selects every signal in
// discovery order.
func (t *Timing) GetDiagram(signalList []string) *models.Diagram {
	t.mu.RLock()
	defer t.mu.RUnlock()

	d := &models.Diagram{Signal: []models.Signal{}}
	if t.result == nil {
		return d
	}
	if signalList == nil {
		for _, sig := range t.result.Signals {
			d.Signal = append(d.Signal, copySignal(sig))
		}
		return d
	}
	for _, name := range signalList {
		if sig, ok := t.result.Lookup(name); ok {
			d.Signal = append(d.Signal, copySignal(sig))
		}
	}
	return d
}

// Signal returns a signal by name.
func (t *Timing) Signal(name string) (models.Signal, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.result == nil {
		return models.Signal{}, false
	}
	sig, ok := t.result.Lookup(name)
	if !ok {
		return models.Signal{}, false
	}
	return copySignal(sig), true
}

// SignalNames returns signal names in discovery order.
func (t *Timing) SignalNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.result == nil {
		return nil
	}
	names := make([]string, 0, len(t.result.Signals))
	for _, sig := range t.result.Signals {
		names = append(names, sig.Name)
	}
	return names
}

// Header returns the column layout of the last read.
func (t *Timing) Header() models.Header {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.result == nil {
		return models.DefaultHeader()
	}
	return t.result.Header
}

// Bindings returns the configuration colors of the last read.
func (t *Timing) Bindings() map[string]parser.Role {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.result == nil {
		return map[string]parser.Role{}
	}
	return t.result.Bindings.Map()
}

// Symbols returns the data color symbols of the last read.
func (t *Timing) Symbols() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.result == nil {
		return map[string]string{}
	}
	return t.result.Symbols.Map()
}

func copySignal(sig models.Signal) models.Signal {
	sig.Data = append([]interface{}{}, sig.Data...)
	return sig
}
