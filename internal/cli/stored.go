package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/store"
	"github.com/ppiankov/planreader/internal/takeoff"
	"github.com/spf13/cobra"
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate <order.csv>...",
	Short: "Merge supplier order CSVs into one order",
	Long: `Aggregate merges line-item CSV files written by 'takeoff -f csv' or
'batch'. Lines with the same description, lumber size and unit are summed
and each merged line keeps its first order line, so the order-line groups
(framing from 1, connectors from 100, ...) stay together.

Example:
  planreader aggregate house-a.csv house-b.csv -o combined.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAggregate,
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved takeoffs",
	Long: `List shows takeoffs saved in the store, newest first.
Takeoffs are only kept between runs when --store (or store.path) names a
SQLite file.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved takeoff",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved takeoff",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)

	aggregateCmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to this file instead of stdout")
	showCmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to this file instead of stdout")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if format == formatTable && outPath != "" {
		format = formatCSV
	}
	if err := checkFormat(format, formatTable, formatJSON, formatCSV); err != nil {
		return err
	}

	lists := make([][]model.MaterialLineItem, 0, len(args))
	for _, path := range args {
		items, err := readOrder(path)
		if err != nil {
			return err
		}
		lists = append(lists, items)
	}
	merged := takeoff.AggregateLineItems(lists...)

	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	switch format {
	case formatJSON:
		return writeJSON(w, merged)
	case formatCSV:
		return takeoff.WriteLineItemsCSV(w, merged)
	}

	if err := writeLineItemTable(w, merged); err != nil {
		return err
	}
	fmt.Fprintln(w)
	totals := takeoff.DivisionTotals(merged)
	divisions := make([]string, 0, len(totals))
	for div := range totals {
		divisions = append(divisions, string(div))
	}
	sort.Strings(divisions)
	for _, div := range divisions {
		fmt.Fprintf(w, "Division %s: %d units\n", div, totals[model.DivisionCode(div)])
	}
	return nil
}

func readOrder(path string) ([]model.MaterialLineItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := takeoff.ReadLineItemsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	records, err := e.store.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list takeoffs: %w", err)
	}

	w := cmd.OutOrStdout()
	if e.cfg.Output.Format == formatJSON {
		return writeJSON(w, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No saved takeoffs")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tFILE\tLINES")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Filename, r.LineItems)
	}
	return tw.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	format := e.cfg.Output.Format
	if err := checkFormat(format, formatTable, formatJSON, formatCSV); err != nil {
		return err
	}

	t, err := e.store.Get(cmd.Context(), args[0])
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no takeoff with id %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("load takeoff: %w", err)
	}

	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	return writeTakeoff(w, t, format)
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	err = e.store.Delete(cmd.Context(), args[0])
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no takeoff with id %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("delete takeoff: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Deleted %s\n", args[0])
	return nil
}
