package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocable/internal/convert"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert KIND VALUE",
	Short: "Convert between common field units",
	Long: `Convert a value in both directions.

Kinds:
  kw-hp    kilowatt ↔ horsepower
  kw-cv    kilowatt ↔ cavalo-vapor
  awg-mm2  AWG gauge ↔ cross-section (mm²)
  temp     Celsius ↔ Fahrenheit

Examples:
  gocable convert kw-hp 7.5
  gocable convert awg-mm2 12`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", args[1])
	}

	kind := convert.Kind(strings.ToLower(args[0]))
	conv, err := convert.Convert(kind, v)
	if errors.Is(err, convert.ErrUnknownKind) {
		names := make([]string, 0, len(convert.Kinds()))
		for _, k := range convert.Kinds() {
			names = append(names, string(k))
		}
		return fmt.Errorf("%w (expected one of %s)", err, strings.Join(names, ", "))
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	tw := newTable(w)
	fmt.Fprintf(tw, "  %g %s\t= %.4f %s\n", v, conv.From, conv.Result, conv.To)
	fmt.Fprintf(tw, "  %g %s\t= %.4f %s\n", v, conv.To, conv.Reverse, conv.From)
	tw.Flush()
	return nil
}
