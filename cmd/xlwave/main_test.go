package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlwave-go/pkg/xlwave"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
	"github.com/xuri/excelize/v2"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"clk", "clk"},
		{"signal1 (H)", "signal1_(H)"},
		{"a/b:c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := safeFileName(tt.input); got != tt.expected {
			t.Errorf("safeFileName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestWriteSignalFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "signals")
	d := &models.Diagram{Signal: []models.Signal{
		{Name: "clk", Data: []interface{}{}, Wave: "pppp"},
		{Name: "bus a", Data: []interface{}{int64(1)}, Wave: "2."},
	}}

	if err := writeSignalFiles(d, dir); err != nil {
		t.Fatalf("writeSignalFiles failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "002_bus_a.json"))
	if err != nil {
		t.Fatalf("Failed to read signal file: %v", err)
	}
	if string(data) != `{"name":"bus a","data":[1],"wave":"2."}` {
		t.Errorf("Unexpected signal file content: %s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "001_clk.json")); err != nil {
		t.Errorf("Expected 001_clk.json: %v", err)
	}
}

// writeTestWorkbook saves a workbook with a name|group header and three
// signals: a (bus, "2."), b (ctrl, "0.") and c (bus, "10").
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	red, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF0000"}},
	})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}

	rows := [][]interface{}{
		{"name", "group", "t0", "t1"},
		{"a", "bus", 1},
		{"b", "ctrl"},
		{"c", "bus"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("Failed to set row %d: %v", i+1, err)
		}
	}
	for _, cell := range []string{"C2", "D2", "C4"} {
		if err := f.SetCellStyle("Sheet1", cell, cell, red); err != nil {
			t.Fatalf("Failed to style %s: %v", cell, err)
		}
	}

	path := filepath.Join(t.TempDir(), "timing.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func resetFlags() {
	outputPath, pretty, sheet, noHeader = "", false, "", false
	signals, where, hscale = nil, "", 0
	signalsDir = ""
}

func TestRun(t *testing.T) {
	input := writeTestWorkbook(t)

	tests := []struct {
		name      string
		signals   []string
		where     string
		hscale    float64
		wantNames []string
		wantWaves []string
		wantScale interface{}
	}{
		{
			name:      "all signals",
			wantNames: []string{"a", "b", "c"},
			wantWaves: []string{"2.", "0.", "10"},
		},
		{
			name:      "signal list order",
			signals:   []string{"c", "missing", "a"},
			wantNames: []string{"c", "a"},
			wantWaves: []string{"10", "2."},
		},
		{
			name:      "where filter",
			where:     `group == "bus"`,
			wantNames: []string{"a", "c"},
			wantWaves: []string{"2.", "10"},
		},
		{
			name:      "signals where and hscale",
			signals:   []string{"c", "b", "a"},
			where:     `group == "bus"`,
			hscale:    0.5,
			wantNames: []string{"c", "a"},
			wantWaves: []string{"10", "2."},
			wantScale: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Cleanup(resetFlags)
			outputPath = filepath.Join(t.TempDir(), "out.json")
			signals = tt.signals
			where = tt.where
			hscale = tt.hscale

			if err := run(&cobra.Command{}, []string{input}); err != nil {
				t.Fatalf("run failed: %v", err)
			}

			data, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			var got struct {
				Signal []struct {
					Name string `json:"name"`
					Wave string `json:"wave"`
				} `json:"signal"`
				Config map[string]interface{} `json:"config"`
			}
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Invalid JSON output %s: %v", data, err)
			}

			var names, waves []string
			for _, s := range got.Signal {
				names = append(names, s.Name)
				waves = append(waves, s.Wave)
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("names = %v, expected %v", names, tt.wantNames)
			}
			if !reflect.DeepEqual(waves, tt.wantWaves) {
				t.Errorf("waves = %v, expected %v", waves, tt.wantWaves)
			}
			if tt.wantScale == nil {
				if got.Config != nil {
					t.Errorf("Expected no config, got %v", got.Config)
				}
			} else if got.Config["hscale"] != tt.wantScale {
				t.Errorf("hscale = %v, expected %v", got.Config["hscale"], tt.wantScale)
			}
		})
	}
}

func TestRunRejectsNonSpreadsheet(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	err := run(&cobra.Command{}, []string{"timing.csv"})
	if !errors.Is(err, xlwave.ErrInvalidInputKind) {
		t.Errorf("Expected ErrInvalidInputKind, got %v", err)
	}
}
