package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ppiankov/planreader/internal/quantity"
	"github.com/ppiankov/planreader/internal/takeoff"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var manualIn quantity.ManualInput

// manualCmd represents the manual command
var manualCmd = &cobra.Command{
	Use:   "manual [input.yaml|input.json]",
	Short: "Generate a takeoff from hand-entered measurements",
	Long: `Manual builds a takeoff from measurements taken off the plans by hand,
read from a YAML or JSON file or given as flags. Flags override file values.

Entered values are used as given. A missing wall length is derived from the
square-footprint perimeter.

Example:
  planreader manual --sqft 2400 --walls 200 --foundation crawlspace
  planreader manual house.yaml -f csv -o order.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManual,
}

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc <trade> [key=value...]",
	Short: "Calculate material quantities for one trade",
	Long: `Calc computes the quantities a single trade needs from its measurements.

Trades and their measurement keys:
  drywall         length_ft, height_ft (8)
  hvac            sq_ft_coverage, num_vents (1)
  painting        sq_ft, coats (2)
  electrical      num_outlets, num_switches, wire_runs_ft
  plumbing        pipe_runs_ft, num_fixtures
  stucco          sq_ft, perimeter_ft
  exterior_paint  sq_ft, coats (2)

Example:
  planreader calc drywall length_ft=200 height_ft=8
  planreader calc stucco sq_ft=1568 perimeter_ft=196 -f csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(manualCmd)
	rootCmd.AddCommand(calcCmd)

	manualCmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to this file instead of stdout")
	manualCmd.Flags().StringVar(&manualIn.Filename, "name", "", "project name recorded on the takeoff")
	manualCmd.Flags().Float64Var(&manualIn.TotalSqft, "sqft", 0, "total square footage")
	manualCmd.Flags().Float64Var(&manualIn.WallLinearFt, "walls", 0, "total wall linear feet")
	manualCmd.Flags().IntVar(&manualIn.NumStories, "stories", 0, "number of stories")
	manualCmd.Flags().StringVar(&manualIn.FoundationType, "foundation", "", "slab, crawlspace, basement or pier_and_beam")
	manualCmd.Flags().IntVar(&manualIn.NumDoors, "doors", 0, "number of doors")
	manualCmd.Flags().IntVar(&manualIn.NumWindows, "windows", 0, "number of windows")
}

func runManual(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	format := e.cfg.Output.Format
	if err := checkFormat(format, formatTable, formatJSON, formatCSV); err != nil {
		return err
	}

	in := quantity.ManualInput{}
	if len(args) == 1 {
		if in, err = readManualInput(args[0]); err != nil {
			return err
		}
	}
	mergeManualFlags(cmd, &in)

	for name, v := range map[string]float64{"sqft": in.TotalSqft, "walls": in.WallLinearFt} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	if in.TotalSqft <= 0 {
		return fmt.Errorf("total square footage is required (--sqft or total_sqft)")
	}

	t := quantity.FullTakeoff(quantity.ManualEstimate(in))
	if err := e.store.Save(cmd.Context(), &t); err != nil {
		return fmt.Errorf("save takeoff: %w", err)
	}

	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	return writeTakeoff(w, &t, format)
}

// readManualInput reads a ManualInput from YAML, or JSON for .json files.
func readManualInput(path string) (quantity.ManualInput, error) {
	var in quantity.ManualInput

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read input: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &in)
	} else {
		err = yaml.Unmarshal(data, &in)
	}
	if err != nil {
		return in, fmt.Errorf("decode %s: %w", path, err)
	}
	return in, nil
}

func mergeManualFlags(cmd *cobra.Command, in *quantity.ManualInput) {
	f := cmd.Flags()
	if f.Changed("name") {
		in.Filename = manualIn.Filename
	}
	if f.Changed("sqft") {
		in.TotalSqft = manualIn.TotalSqft
	}
	if f.Changed("walls") {
		in.WallLinearFt = manualIn.WallLinearFt
	}
	if f.Changed("stories") {
		in.NumStories = manualIn.NumStories
	}
	if f.Changed("foundation") {
		in.FoundationType = manualIn.FoundationType
	}
	if f.Changed("doors") {
		in.NumDoors = manualIn.NumDoors
	}
	if f.Changed("windows") {
		in.NumWindows = manualIn.NumWindows
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if err := checkFormat(format, formatTable, formatJSON, formatCSV); err != nil {
		return err
	}

	raw, err := parseMeasurements(args[1:])
	if err != nil {
		return err
	}

	trade := quantity.ParseTrade(args[0])
	if trade == quantity.TradeGeneral {
		return fmt.Errorf("unknown trade %q (want one of %s)", args[0], tradeNames())
	}

	result := quantity.CalculateTrade(args[0], raw)
	list := takeoff.AggregateQuantities(result)

	w := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(w, list)
	case formatCSV:
		return takeoff.WriteCSV(w, list)
	}

	fmt.Fprintf(w, "%s\n\n", takeoff.DisplayName(string(trade)))
	for _, e := range list.Entries {
		fmt.Fprintf(w, "  %-26s %8d %s\n", takeoff.DisplayName(e.Item), e.Quantity, e.Unit)
	}
	return nil
}

// parseMeasurements parses key=value arguments into a measurement map.
func parseMeasurements(args []string) (map[string]float64, error) {
	raw := make(map[string]float64, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid measurement %q (want key=value)", arg)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid value for %s: %q is not a finite number", key, value)
		}
		raw[strings.ToLower(strings.TrimSpace(key))] = v
	}
	return raw, nil
}

func tradeNames() string {
	var names []string
	for _, t := range quantity.Trades() {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
