package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/circuit"
	"github.com/alexiusacademia/gocable/internal/conduit"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/sizing"
	"github.com/spf13/cobra"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Size every circuit and conduit in a project file",
	Long: `Size all circuits and conduits defined in a YAML (or JSON) project file.

Example project file:

  name: Silva residence
  defaults:
    voltage: 220
    phases: 1
    power_factor: 0.92
    reactance: 0.1
    temperature: 70
    material: copper
  circuits:
    - name: shower
      current: 32
      length: 18
    - name: workshop
      current: 25
      length: 60
      voltage: 380
      phases: 3
  conduits:
    - name: kitchen
      cables:
        - {section: 2.5, count: 3}
        - {section: 4, count: 2}

Examples:
  gocable batch --file project.yaml`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to project file [required]")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	project, err := circuit.LoadFromFile(batchFile)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	specs, err := project.Specs()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	title := "PROJECT SIZING"
	if project.Name != "" {
		title = "PROJECT SIZING - " + project.Name
	}
	printHeader(w, title)

	if len(specs) > 0 {
		printSection(w, "CIRCUITS")
		tw := newTable(w)
		fmt.Fprintf(tw, "  Circuit\tCurrent\tLength\tSection\tDrop (%%)\tStatus\n")
		fmt.Fprintf(tw, "  ───────\t───────\t──────\t───────\t────────\t──────\n")
		for _, ns := range specs {
			res, err := sizing.SizeStandard(ns.Spec)
			if err != nil {
				return fmt.Errorf("circuit %q: %w", ns.Name, err)
			}

			if rec := res.Recommended; rec != nil {
				log.Debugw("circuit sized", "circuit", ns.Name, "section", rec.SectionMM2)
				fmt.Fprintf(tw, "  %s\t%.1f A\t%.1f m\t%g mm²\t%.2f\t%s\n",
					ns.Name, ns.Spec.CurrentA, ns.Spec.LengthM, rec.SectionMM2, rec.DropPct, rec.Status())
			} else {
				log.Debugw("circuit has no compliant section", "circuit", ns.Name)
				best := res.Best()
				fmt.Fprintf(tw, "  %s\t%.1f A\t%.1f m\t-\t%.2f\tno compliant section (best %g mm²)\n",
					ns.Name, ns.Spec.CurrentA, ns.Spec.LengthM, best.DropPct, best.SectionMM2)
			}
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(project.Conduits) > 0 {
		printSection(w, "CONDUITS")
		tw := newTable(w)
		fmt.Fprintf(tw, "  Conduit\tCables\tFill limit\tMin. internal Ø\n")
		fmt.Fprintf(tw, "  ───────\t──────\t──────────\t───────────────\n")
		for _, run := range project.Conduits {
			res, err := conduit.Fill(run.Cables)
			if err != nil {
				return fmt.Errorf("conduit %q: %w", run.Name, err)
			}
			log.Debugw("conduit sized", "conduit", run.Name, "diameter_mm", res.RequiredDiameterMM)
			fmt.Fprintf(tw, "  %s\t%d\t%.0f %%\t%.2f mm\n", run.Name, res.CableCount, res.FillLimitPct, res.RequiredDiameterMM)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	return nil
}
