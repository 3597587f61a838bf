package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocable/internal/conduit"
	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/spf13/cobra"
)

var (
	conduitCables      []string
	conduitShowDiagram bool
)

var conduitCmd = &cobra.Command{
	Use:   "conduit",
	Short: "Calculate the minimum conduit diameter for a set of cables",
	Long: `Calculate the minimum internal conduit diameter for a bundle of
750V PVC cables.

Each --cable flag takes SECTIONxCOUNT (e.g. 2.5x3). The occupancy limit
depends on the total number of cables:

  1 cable     53%
  2 cables    31%
  3 or more   40%

Examples:
  gocable conduit --cable 2.5x3
  gocable conduit -c 2.5x3 -c 4x2 -c 6x1`,
	RunE: runConduit,
}

func init() {
	rootCmd.AddCommand(conduitCmd)

	conduitCmd.Flags().StringArrayVarP(&conduitCables, "cable", "c", nil, "Cable entry SECTIONxCOUNT, repeatable [required]")
	conduitCmd.Flags().BoolVar(&conduitShowDiagram, "diagram", false, "Show ASCII conduit sketch")
	conduitCmd.MarkFlagRequired("cable")
}

// parseCableEntry reads "2.5x3" (count defaults to 1 when omitted).
func parseCableEntry(s string) (conduit.Entry, error) {
	sectionStr, countStr, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")

	section, err := strconv.ParseFloat(strings.TrimSpace(sectionStr), 64)
	if err != nil {
		return conduit.Entry{}, fmt.Errorf("invalid cable section in %q", s)
	}

	count := 1
	if found {
		count, err = strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return conduit.Entry{}, fmt.Errorf("invalid cable count in %q", s)
		}
	}

	return conduit.Entry{SectionMM2: section, Count: count}, nil
}

func runConduit(cmd *cobra.Command, args []string) error {
	entries := make([]conduit.Entry, 0, len(conduitCables))
	for _, c := range conduitCables {
		e, err := parseCableEntry(c)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}

	res, err := conduit.Fill(entries)
	if err != nil {
		return err
	}
	log.Debugw("conduit fill", "cables", res.CableCount, "diameter_mm", res.RequiredDiameterMM)

	w := cmd.OutOrStdout()
	printHeader(w, "CONDUIT FILL - NBR 5410")
	printConduitResult(w, entries, res)

	if conduitShowDiagram {
		fmt.Fprintln(w, diagram.DrawConduitSection(res.RequiredDiameterMM, res.FillLimitPct, res.CableCount))
	}
	return nil
}

func printConduitResult(w io.Writer, entries []conduit.Entry, res *conduit.Result) {
	printSection(w, "CABLES")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Section\tCount\n")
	fmt.Fprintf(tw, "  ───────\t─────\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %g mm²\t%d\n", e.SectionMM2, e.Count)
	}
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	tw = newTable(w)
	fmt.Fprintf(tw, "  Total cables:\t%d\n", res.CableCount)
	fmt.Fprintf(tw, "  Occupied area:\t%.2f mm²\n", res.TotalConductorAreaMM2)
	fmt.Fprintf(tw, "  Fill limit applied:\t%.0f %%\n", res.FillLimitPct)
	fmt.Fprintf(tw, "  Required internal area:\t%.2f mm²\n", res.RequiredAreaMM2)
	fmt.Fprintf(tw, "  Required internal diameter:\t%.2f mm\n", res.RequiredDiameterMM)
	tw.Flush()
	fmt.Fprintln(w)
}
