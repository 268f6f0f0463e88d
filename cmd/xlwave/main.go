// Package main provides the CLI entry point for xlwave.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlwave-go/internal/config"
	"github.com/ukaji3/xlwave-go/internal/logging"
	"github.com/ukaji3/xlwave-go/pkg/xlwave"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/output"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/selector"
)

var (
	outputPath string
	pretty     bool
	sheet      string
	noHeader   bool
	signals    []string
	where      string
	hscale     float64
	signalsDir string
	logLevel   string
	logFormat  string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "xlwave [input.xlsx]",
		Short: "Convert colored spreadsheet timing diagrams to WaveJSON",
		Long: `xlwave reads a worksheet whose cells are filled with colors to draw
digital timing diagrams and outputs a WaveDrom compatible JSON description.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, logFormat)
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", cfg.Render.Pretty, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheet, "sheet", cfg.Read.Sheet, "Worksheet name (default: first sheet)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", cfg.Read.NoHeader, "Treat row 1 as data instead of a header")
	rootCmd.Flags().StringSliceVar(&signals, "signals", nil, "Signals to include, in order (default: all)")
	rootCmd.Flags().StringVar(&where, "where", "", `Signal filter expression, e.g. 'group == "bus"'`)
	rootCmd.Flags().Float64Var(&hscale, "hscale", cfg.Render.HScale, "Horizontal scale for the renderer (0: omit)")
	rootCmd.Flags().StringVar(&signalsDir, "signals-dir", "", "Directory for per-signal output files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", cfg.Logging.Format, "Log format: text, json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := logging.WithFields("input", inputPath)

	header := !noHeader
	t, err := xlwave.New(inputPath, xlwave.ReadOptions{
		Sheet:  sheet,
		Header: &header,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	var list []string
	if len(signals) > 0 {
		list = signals
	}
	diagram := t.GetDiagram(list)

	if where != "" {
		sel, err := selector.Compile(where)
		if err != nil {
			return err
		}
		diagram.Signal, err = sel.Filter(diagram.Signal)
		if err != nil {
			return err
		}
	}

	if hscale > 0 {
		diagram.WithConfig(map[string]interface{}{"hscale": hscale})
	}
	logger.Info("diagram built", "signals", len(diagram.Signal))

	// Serialize to JSON
	jsonData, err := output.ToJSON(diagram, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if signalsDir == "" {
		fmt.Println(string(jsonData))
	}

	// Write per-signal files
	if signalsDir != "" {
		if err := writeSignalFiles(diagram, signalsDir); err != nil {
			return fmt.Errorf("failed to write signal files: %w", err)
		}
	}

	return nil
}

func writeSignalFiles(d *models.Diagram, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range d.Signal {
		jsonData, err := output.SignalToJSON(&d.Signal[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%03d_%s.json", i+1, safeFileName(d.Signal[i].Name)))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// safeFileName replaces path separators and other characters that are awkward
// in file names.
func safeFileName(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			out[i] = '_'
		}
	}
	return string(out)
}
