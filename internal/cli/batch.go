package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/pipeline"
	"github.com/ppiankov/planreader/internal/takeoff"
	"github.com/ppiankov/planreader/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	mergedPath   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Generate takeoffs for many plan files in parallel",
	Long: `Batch processes the plan files listed in a file (one path per line,
'#' starts a comment) with a pool of workers:
- each plan is parsed and turned into a full takeoff
- every takeoff is written to the output directory as CSV and JSON
- optionally all takeoffs are merged into one supplier order

Relative paths are resolved against the list file's directory.

Example:
  planreader batch plans.txt
  planreader batch plans.txt --concurrency 8 --output-dir ./takeoffs
  planreader batch plans.txt --merge order.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./planreader-takeoffs", "output directory for takeoffs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&mergedPath, "merge", "", "also write all line items merged into one CSV")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	workers := concurrency
	if workers <= 0 {
		workers = e.cfg.Concurrency.Workers
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  planreader batch\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if e.cfg.OCR.Provider != "" {
		fmt.Fprintf(os.Stderr, "  OCR:          %s/%s\n", e.cfg.OCR.Provider, e.cfg.OCR.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.FromConfig(e.cfg, e.store, e.logger)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, workers)

	fmt.Fprintf(os.Stderr, "⚙️  Processing plans with %d workers...\n\n", workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	var lists [][]model.MaterialLineItem
	for _, result := range results {
		if result.Error != nil {
			continue
		}

		if err := writeBatchTakeoff(outputDir, result); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}
		lists = append(lists, result.Takeoff.Materials)

		fmt.Fprintf(os.Stderr, "✓ %s (%d sqft, %d line items, %v)\n",
			result.Path, result.Takeoff.Project.TotalSqft, len(result.Takeoff.Materials), result.Duration.Round(time.Millisecond))
	}

	if mergedPath != "" && len(lists) > 0 {
		if err := writeMerged(mergedPath, lists); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\n✓ Merged order written to %s\n", mergedPath)
	}

	if failed := worker.Failures(results); len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		for _, result := range failed {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
		}
	}

	summary := worker.Summarize(results)

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:      %d plans\n", summary.Total)
	fmt.Fprintf(os.Stderr, "  Success:    %d\n", summary.Succeeded)
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", summary.Failed)
	fmt.Fprintf(os.Stderr, "  Slowest:    %v\n", summary.Slowest.Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if summary.Failed > 0 && summary.Succeeded == 0 {
		return fmt.Errorf("all %d plans failed", summary.Failed)
	}
	return nil
}

// writeBatchTakeoff writes <plan>-<id8>.csv and .json for one result.
func writeBatchTakeoff(dir string, result *worker.PlanResult) error {
	t := result.Takeoff
	base := filepath.Join(dir, sanitizeFilename(result.Path)+"-"+shortID(t.ID))

	f, err := os.Create(base + ".csv")
	if err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := takeoff.WriteLineItemsCSV(f, t.Materials); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	f, err = os.Create(base + ".json")
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	if err := writeJSON(f, t); err != nil {
		f.Close()
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return f.Close()
}

func writeMerged(path string, lists [][]model.MaterialLineItem) error {
	w, err := openOutput(path)
	if err != nil {
		return err
	}
	if err := takeoff.WriteLineItemsCSV(w, takeoff.AggregateLineItems(lists...)); err != nil {
		w.Close()
		return fmt.Errorf("write merged order: %w", err)
	}
	return w.Close()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
