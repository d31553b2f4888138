package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okorn/cvd/pkg/cvd"
	"github.com/okorn/cvd/pkg/types"
)

var pretty bool

type opts struct {
	// direction
	reverse bool

	// sensor
	r0     float64
	coeffA float64
	coeffB float64
	coeffC float64

	// inversion
	strategy  string
	precision int

	// outputs
	csvPath  string
	jsonPath string
}

type row struct {
	Temperature float64 `json:"temperature_c"`
	Resistance  float64 `json:"resistance_ohm"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "cvd [VALUE]...",
		Short: "Platinum RTD resistance/temperature converter",
		Long: `The cvd tool converts between temperature and resistance for platinum
resistance thermometers (Pt100, Pt1000, ...) using the Callendar-Van Dusen
equations per IEC 60751.

By default VALUEs are temperatures in degrees Celsius and the output is
resistance in Ohm. With --reverse, VALUEs are resistances in Ohm and the
output is temperature in degrees Celsius.

Negative values must follow a "--" separator so they are not read as flags.

Examples:
  cvd -- 0 100 -15.5 850
  cvd --reverse 18.52 94.12 390.48
  cvd --reverse --r0 1000 --strategy interp 1385.1
  cvd --csv out.csv --json out.json -- -200 0 850`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().BoolVar(&pretty, "pretty", true, "format output as a table instead of plain lines")
	root.Flags().BoolVarP(&o.reverse, "reverse", "r", false, "convert resistance to temperature instead")

	root.Flags().Float64Var(&o.r0, "r0", 100.0, "sensor resistance at 0 °C in Ohm (100 for Pt100, 1000 for Pt1000)")
	root.Flags().Float64Var(&o.coeffA, "coeff-a", 3.9083e-3, "IEC 60751 coefficient A")
	root.Flags().Float64Var(&o.coeffB, "coeff-b", -5.775e-7, "IEC 60751 coefficient B")
	root.Flags().Float64Var(&o.coeffC, "coeff-c", -4.183e-12, "IEC 60751 coefficient C")

	root.Flags().StringVar(&o.strategy, "strategy", "analytic", "inversion strategy: analytic or interp")
	root.Flags().IntVar(&o.precision, "precision", 3, "decimal digits of the interpolation grid step")

	root.Flags().StringVar(&o.csvPath, "csv", "", "write results to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write results to JSON file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	vals, err := parseValues(args)
	if err != nil {
		return err
	}

	var strategy cvd.Strategy
	switch o.strategy {
	case "analytic":
		strategy = cvd.Analytic
	case "interp":
		strategy = cvd.Interpolation
	default:
		return fmt.Errorf("unknown strategy %q (want analytic or interp)", o.strategy)
	}

	conv := cvd.New(&cvd.Config{
		R0:        o.r0,
		A:         o.coeffA,
		B:         o.coeffB,
		C:         o.coeffC,
		Strategy:  strategy,
		Precision: o.precision,
	})

	rows := make([]row, len(vals))
	if o.reverse {
		temps, err := conv.TemperatureBatch(vals)
		if err != nil {
			return err
		}
		for i := range vals {
			rows[i] = row{Temperature: temps[i], Resistance: vals[i]}
		}
	} else {
		res, err := conv.ResistanceBatch(vals)
		if err != nil {
			return err
		}
		for i := range vals {
			rows[i] = row{Temperature: vals[i], Resistance: res[i]}
		}
	}

	printRows(rows, o.reverse)

	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rows); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}

func parseValues(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", a)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func printRows(rows []row, reverse bool) {
	if pretty {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TEMPERATURE\tRESISTANCE")
		fmt.Fprintln(tw, "-----------\t----------")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", types.Celsius(r.Temperature), types.Ohm(r.Resistance))
		}
		tw.Flush()
		return
	}
	for _, r := range rows {
		if reverse {
			fmt.Printf("%.4f, %.4f\n", r.Resistance, r.Temperature)
		} else {
			fmt.Printf("%.4f, %.4f\n", r.Temperature, r.Resistance)
		}
	}
}

func writeCSV(path string, rows []row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"temperature_c", "resistance_ohm"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			strconv.FormatFloat(r.Temperature, 'f', -1, 64),
			strconv.FormatFloat(r.Resistance, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, rows []row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
