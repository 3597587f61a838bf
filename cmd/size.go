package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/alexiusacademia/gocable/internal/sizing"
	"github.com/spf13/cobra"
)

var (
	sizeCircuit circuitFlags

	// Diagram options
	sizeShowDiagram bool
	sizeExportFile  string
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Select the smallest adequate conductor section",
	Long: `Evaluate every standard cross-section (1.5 to 240 mm²) for a circuit
and recommend the smallest one that satisfies both:

  - voltage drop ≤ 4% of the nominal voltage
  - design current ≤ conductor ampacity (NBR 5410, PVC, method B1)

The full comparison table is always printed, even when no section
complies.

Examples:
  # 20 A, 30 m single-phase copper circuit at 220 V
  gocable size --current 20 --length 30

  # Three-phase aluminum feeder with a chart
  gocable size -i 120 -l 90 -p 3 -v 380 -m aluminum --diagram -o feeder.png`,
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCircuit.register(sizeCmd)

	// Diagram options
	sizeCmd.Flags().BoolVar(&sizeShowDiagram, "diagram", false, "Show ASCII voltage-drop bar chart and curve")
	sizeCmd.Flags().StringVarP(&sizeExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runSize(cmd *cobra.Command, args []string) error {
	spec, err := sizeCircuit.spec()
	if err != nil {
		return err
	}

	result, err := sizing.SizeStandard(spec)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printHeader(w, "CONDUCTOR SIZING - NBR 5410")
	printCircuit(w, spec)
	printSizingResult(w, result)

	if sizeShowDiagram {
		fmt.Fprintln(w, diagram.DrawSizingBars(result))
		fmt.Fprintln(w, diagram.DrawDropCurve(result))
	}

	if sizeExportFile != "" {
		path, err := diagram.ExportSizingChart(result, sizeExportFile)
		if err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Fprintf(w, "Chart exported to: %s\n", path)
	}
	return nil
}

func printSizingResult(w io.Writer, result *sizing.Result) {
	printSection(w, "COMPARISON TABLE")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Section\tAmpacity\tDrop (V)\tDrop (%%)\tStatus\n")
	fmt.Fprintf(tw, "  ───────\t────────\t────────\t────────\t──────\n")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "  %g mm²\t%.1f A\t%.2f\t%.2f\t%s\n",
			row.SectionMM2, row.AmpacityA, row.DropV, row.DropPct, row.Status())
	}
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "DESIGN RESULT")
	rec := result.Recommended
	if rec == nil {
		log.Debugw("no compliant section", "current", result.Circuit.CurrentA, "length", result.Circuit.LengthM)

		best, worst := result.Best(), result.Worst()
		fmt.Fprintln(w, "  ╔═════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║  NO STANDARD SECTION COMPLIES           ║")
		fmt.Fprintln(w, "  ╚═════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Best available:  %g mm² (%.2f%%, %s)\n", best.SectionMM2, best.DropPct, best.Status())
		fmt.Fprintf(w, "  Worst candidate: %g mm² (%.2f%%, %s)\n", worst.SectionMM2, worst.DropPct, worst.Status())
		fmt.Fprintln(w, "  Consider parallel conductors, a higher voltage or a shorter run.")
		fmt.Fprintln(w)
		return
	}

	log.Debugw("section recommended", "section", rec.SectionMM2, "drop_pct", rec.DropPct)
	fmt.Fprint(w, diagram.DrawSummaryBox("RECOMMENDED SECTION", []string{
		fmt.Sprintf("S = %g mm²", rec.SectionMM2),
		fmt.Sprintf("ΔV = %.2f V (%.2f%%)", rec.DropV, rec.DropPct),
		fmt.Sprintf("Iz = %.1f A ≥ Ib = %.2f A", rec.AmpacityA, result.Circuit.CurrentA),
	}))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d of %d standard sections comply (limit %.0f%%).\n",
		result.CompliantCount(), len(result.Rows), nbr.MaxVoltageDropPct)
	fmt.Fprintln(w)
}
