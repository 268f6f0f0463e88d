package parser

import (
	"strings"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
)

// Result holds everything produced by one read pass over a grid.
type Result struct {
	// Header is the column layout used for the pass.
	Header models.Header
	// Signals lists signals in discovery order.
	Signals []models.Signal
	// Bindings holds the configuration colors declared during the pass.
	Bindings *ColorBindings
	// Symbols holds the display symbols assigned to data colors.
	Symbols *SymbolTable
	// Duplicates lists signal rows skipped because the name was already seen.
	Duplicates []string

	index map[string]int
}

func newResult(h models.Header) *Result {
	return &Result{
		Header:   h,
		Signals:  []models.Signal{},
		Bindings: NewColorBindings(),
		Symbols:  NewSymbolTable(),
		index:    make(map[string]int),
	}
}

// Lookup returns the signal with the given name.
func (r *Result) Lookup(name string) (models.Signal, bool) {
	i, ok := r.index[name]
	if !ok {
		return models.Signal{}, false
	}
	return r.Signals[i], true
}

// Interpret walks the grid row by row and builds signals. When headerRow is
// true the first row is treated as the header and skipped. Configuration
// keyword rows bind their name cell color to a role; the binding applies to
// every cell read after it.
func Interpret(g Grid, h models.Header, headerRow bool) *Result {
	res := newResult(h)

	startRow := 0
	if headerRow {
		startRow = 1
	}

	for row := startRow; row < g.Rows(); row++ {
		nameCell := g.Cell(row, h.Name)
		name := nameCell.Value
		if name == "" {
			continue
		}

		if role, ok := RoleForKeyword(name); ok {
			res.Bindings.Bind(nameCell.Color, role)
			continue
		}

		if _, ok := res.Lookup(name); ok {
			res.Duplicates = append(res.Duplicates, name)
			continue
		}

		sig := res.scanRow(g, row)
		sig.Name = name
		if h.Group != nil {
			sig.Group = g.Cell(row, *h.Group).Value
		}
		res.index[name] = len(res.Signals)
		res.Signals = append(res.Signals, sig)
	}

	return res
}

// scanRow folds the data columns of one row into a wave string.
func (r *Result) scanRow(g Grid, row int) models.Signal {
	var wave strings.Builder
	data := []interface{}{}

	color := models.BlankColor
	for col := r.Header.StartCol; col < g.Cols(); col++ {
		cell := g.Cell(row, col)
		previous := color
		color = cell.Color

		if role, ok := r.Bindings.Lookup(color); ok {
			if m, ok := role.Marker(); ok {
				wave.WriteByte(m)
			}
			// Configuration cells are transparent to continuation.
			color = previous
			continue
		}

		repeat := wave.Len() > 0 && color == previous
		switch {
		case color != models.BlankColor && !cell.IsEmpty():
			wave.WriteString(r.Symbols.Symbol(color))
			data = append(data, cellValue(cell))
		case repeat:
			wave.WriteByte('.')
		case color != models.BlankColor:
			wave.WriteByte('1')
		default:
			wave.WriteByte('0')
		}
	}

	return models.Signal{Data: data, Wave: wave.String()}
}
