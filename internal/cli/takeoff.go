package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/planreader/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outPath     string
	docTimeout  time.Duration
	showRawText bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Estimate building geometry from a plan file",
	Long: `Parse reads a plan file and reports the estimated building geometry:
square footage, perimeter, wall length, stories, foundation type, door and
window counts, plus the dimensions and material keywords it found.

Supported inputs: .pdf, .txt, .html, .htm, .png, .jpg, .jpeg.
Scanned pages are sent to the OCR provider when one is configured.

Example:
  planreader parse plans.pdf
  planreader parse scan.png --ocr openai -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// takeoffCmd represents the takeoff command
var takeoffCmd = &cobra.Command{
	Use:   "takeoff <file>",
	Short: "Generate a supplier-ready material takeoff from a plan file",
	Long: `Takeoff parses a plan file, estimates its geometry and generates the
full material list: Division 06 framing, connectors, fasteners and anchors,
plus drywall, joint compound, paint and stucco from field standards.

The takeoff is saved to the store and can be listed with 'planreader list'.

Example:
  planreader takeoff plans.pdf
  planreader takeoff plans.pdf -f csv -o order.csv
  planreader takeoff plans.pdf --store takeoffs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runTakeoff,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(takeoffCmd)

	for _, cmd := range []*cobra.Command{parseCmd, takeoffCmd} {
		cmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to this file instead of stdout")
		cmd.Flags().DurationVar(&docTimeout, "timeout", 5*time.Minute, "timeout for reading and OCR")
	}
	parseCmd.Flags().BoolVar(&showRawText, "raw", false, "include extracted raw text in JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	format := e.cfg.Output.Format
	if err := checkFormat(format, formatTable, formatJSON); err != nil {
		return err
	}

	p, err := pipeline.FromConfig(e.cfg, nil, e.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), docTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Parsing %s...\n", args[0])
	}

	parsed, err := p.Parse(ctx, args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	reportParsed(parsed)

	est := parsed.Estimate
	if !showRawText {
		est.RawText = ""
	}

	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if format == formatJSON {
		return writeJSON(w, est)
	}
	return writeEstimateTable(w, est)
}

func runTakeoff(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	format := e.cfg.Output.Format
	if err := checkFormat(format, formatTable, formatJSON, formatCSV); err != nil {
		return err
	}

	p, err := pipeline.FromConfig(e.cfg, e.store, e.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), docTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Generating takeoff for %s...\n", args[0])
	}

	t, err := p.Process(ctx, args[0])
	if err != nil {
		return fmt.Errorf("takeoff failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d line items (id %s)\n", len(t.Materials), t.ID)
	}

	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	return writeTakeoff(w, t, format)
}

// reportParsed prints warnings and, when verbose, how the estimate was made.
func reportParsed(parsed *pipeline.Parsed) {
	for _, warn := range parsed.Warnings {
		fmt.Fprintf(os.Stderr, "⚠️  %s\n", warn)
	}
	if parsed.Empty {
		fmt.Fprintf(os.Stderr, "⚠️  No readable text found; geometry estimated from page count\n")
	}
	if !verbose {
		return
	}
	if parsed.Cached {
		fmt.Fprintf(os.Stderr, "✓ Loaded cached estimate\n")
	}
	fmt.Fprintf(os.Stderr, "✓ Found %d dimensions and %d material keywords\n",
		len(parsed.Estimate.DimensionsFound), len(parsed.Estimate.MaterialsDetected))
}
