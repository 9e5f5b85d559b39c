package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/takeoff"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(allowed, ", "))
}

// openOutput returns stdout for an empty path, otherwise a created file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEstimateTable(w io.Writer, est model.BlueprintEstimate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", est.Filename)
	fmt.Fprintf(tw, "Pages:\t%d\n", est.PageCount)
	fmt.Fprintf(tw, "Total sqft:\t%d\n", est.TotalSqft)
	fmt.Fprintf(tw, "Perimeter:\t%d ft\n", est.Perimeter)
	fmt.Fprintf(tw, "Wall linear ft:\t%d\n", est.WallLinearFt)
	fmt.Fprintf(tw, "Ceiling / floor sqft:\t%d / %d\n", est.CeilingSqft, est.FloorSqft)
	fmt.Fprintf(tw, "Exterior sqft:\t%d\n", est.ExteriorSqft)
	fmt.Fprintf(tw, "Roof sqft:\t%d\n", est.RoofSqft)
	fmt.Fprintf(tw, "Stories:\t%d\n", est.NumStories)
	fmt.Fprintf(tw, "Foundation:\t%s\n", est.FoundationType)
	fmt.Fprintf(tw, "Doors / windows:\t%d / %d\n", est.NumDoors, est.NumWindows)
	fmt.Fprintf(tw, "Dimensions found:\t%d\n", len(est.DimensionsFound))
	fmt.Fprintf(tw, "Materials detected:\t%d\n", len(est.MaterialsDetected))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(est.Signals) > 0 {
		fmt.Fprintln(w, "\nSignals:")
		for _, s := range est.Signals {
			fmt.Fprintf(w, "  - [%s] %s\n", s.Type, s.Description)
		}
	}
	return nil
}

func writeLineItemTable(w io.Writer, items []model.MaterialLineItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tDESCRIPTION\tSIZE\tQTY\tUNIT\tDIV")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			it.OrderLine, it.Description, it.LumberSize, it.Quantity, it.Unit, it.Division)
	}
	return tw.Flush()
}

func writeTakeoffTable(w io.Writer, t *model.Takeoff) error {
	p := t.Project
	fmt.Fprintf(w, "Takeoff %s\n", t.ID)
	if p.Filename != "" {
		fmt.Fprintf(w, "  %s, %d page(s)\n", p.Filename, p.PageCount)
	}
	fmt.Fprintf(w, "  %d sqft, %d stories, %s foundation, %d doors, %d windows\n\n",
		p.TotalSqft, p.Stories, p.Foundation, p.Doors, p.Windows)

	if err := writeLineItemTable(w, t.Materials); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d line items. %s\n", t.Summary.TotalLineItems, t.Summary.Note)
	return nil
}

// writeTakeoff renders t in format.
func writeTakeoff(w io.Writer, t *model.Takeoff, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, t)
	case formatCSV:
		return takeoff.WriteLineItemsCSV(w, t.Materials)
	default:
		return writeTakeoffTable(w, t)
	}
}

var filenameReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "-",
)

// sanitizeFilename turns a plan path into a safe output base name.
func sanitizeFilename(s string) string {
	s = filepath.Base(s)
	s = strings.TrimSuffix(s, filepath.Ext(s))
	s = filenameReplacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" || s == "." {
		s = "plan"
	}
	return s
}
