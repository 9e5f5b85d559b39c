package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/planreader/internal/catalog"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Look up reference data used for takeoffs",
	Long: `Catalog prints the static reference tables: MasterFormat divisions,
lumber sizes, Simpson Strong-Tie and MiTek connectors, and connector
packages.`,
}

var catalogDivisionsCmd = &cobra.Command{
	Use:   "divisions [code]",
	Short: "List divisions, or the subcategories of one division",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, d := range catalog.Divisions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Code, d.Name, d.Description)
			}
			return tw.Flush()
		}

		d, ok := catalog.DivisionByCode(args[0])
		if !ok {
			return fmt.Errorf("unknown division %q", args[0])
		}
		fmt.Fprintf(w, "Division %s - %s\n\n", d.Code, d.Name)
		for _, sc := range d.Subcategories {
			fmt.Fprintf(w, "  %s  %s\n", sc.Code, sc.Name)
		}
		return nil
	},
}

var catalogLumberCmd = &cobra.Command{
	Use:   "lumber [nominal]",
	Short: "List lumber sizes, or look up one nominal size",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sizes := catalog.LumberSizes()
		if len(args) == 1 {
			l, ok := catalog.LumberByNominal(args[0])
			if !ok {
				return fmt.Errorf("unknown lumber size %q", args[0])
			}
			sizes = []catalog.LumberSize{l}
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NOMINAL\tACTUAL\tGROUP\tLENGTHS (FT)")
		for _, l := range sizes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Nominal, l.Actual, l.Group, joinInts(l.LengthsFt))
		}
		return tw.Flush()
	},
}

var catalogConnectorCmd = &cobra.Command{
	Use:   "connector <model>",
	Short: "Look up a Simpson Strong-Tie or MiTek connector",
	Example: `  planreader catalog connector H2.5A
  planreader catalog connector lus210`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := catalog.ConnectorByModel(args[0])
		if !ok {
			return fmt.Errorf("unknown connector model %q", args[0])
		}
		return writeConnector(cmd.OutOrStdout(), c)
	},
}

var catalogPackageCmd = &cobra.Command{
	Use:   "package [key] [member=count...]",
	Short: "List connector packages, or resolve one for member counts",
	Long: `Without arguments, lists the standard connector packages.
With a package key and member counts, prints the connectors to order.

Example:
  planreader catalog package
  planreader catalog package roof_truss_package truss=24`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, p := range catalog.Packages() {
				fmt.Fprintf(w, "%-22s %s\n", p.Key, p.Description)
			}
			return nil
		}

		p, ok := catalog.PackageByKey(args[0])
		if !ok {
			return fmt.Errorf("unknown package %q", args[0])
		}
		counts, err := parseCounts(args[1:])
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\n\n", p.Name)
		if len(counts) == 0 {
			for _, it := range p.Items {
				fmt.Fprintf(w, "  %-10s %d per %d %s  %s\n", it.Model, it.Quantity, max(it.Every, 1), it.Per, it.Note)
			}
			return nil
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, q := range p.Quantities(counts) {
			fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n", q.Connector.Model, q.Quantity, q.Connector.Name, q.Note)
		}
		return tw.Flush()
	},
}

func writeConnector(w io.Writer, c catalog.Connector) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}
	field("Model", c.Model)
	field("Manufacturer", string(c.Manufacturer))
	field("Category", c.Category)
	field("Name", c.Name)
	field("Description", c.Description)
	field("Use", c.Use)
	field("Load", c.Load)
	field("Fasteners", c.Fasteners)
	field("Lumber", c.Lumber)
	field("Post size", c.PostSize)
	field("Length", c.Length)
	field("Width", c.Width)
	field("Lengths", strings.Join(c.Lengths, ", "))
	field("Sizes", strings.Join(c.Sizes, ", "))
	field("Diameters", strings.Join(c.Diameters, ", "))
	field("Unit", c.Unit)
	if c.PackQty > 0 {
		field("Pack qty", strconv.Itoa(c.PackQty))
	}
	return tw.Flush()
}

// parseCounts parses member=count arguments.
func parseCounts(args []string) (map[string]int, error) {
	counts := make(map[string]int, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid count %q (want member=count)", arg)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid count for %s: %w", key, err)
		}
		counts[strings.ToLower(strings.TrimSpace(key))] = n
	}
	return counts, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogDivisionsCmd)
	catalogCmd.AddCommand(catalogLumberCmd)
	catalogCmd.AddCommand(catalogConnectorCmd)
	catalogCmd.AddCommand(catalogPackageCmd)
}
