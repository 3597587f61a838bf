package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/spf13/cobra"
)

var (
	lightingLength float64
	lightingWidth  float64
	lightingLux    float64
	lightingLumens float64
)

var lightingCmd = &cobra.Command{
	Use:   "lighting",
	Short: "Estimate the number of lamps for a room (lumen method)",
	Long: `Estimate the luminous flux and number of lamps for a room.

  Φ = E·A / (u·d)

with utilization factor u = 0.5 and depreciation factor d = 0.8.

Examples:
  # 5 x 4 m office at 500 lux with 3000 lm lamps
  gocable lighting --length 5 --width 4 --lux 500 --lumens 3000`,
	RunE: runLighting,
}

func init() {
	rootCmd.AddCommand(lightingCmd)

	lightingCmd.Flags().Float64VarP(&lightingLength, "length", "l", 0, "Room length (m) [required]")
	lightingCmd.Flags().Float64VarP(&lightingWidth, "width", "w", 0, "Room width (m) [required]")
	lightingCmd.Flags().Float64VarP(&lightingLux, "lux", "e", 300, "Target illuminance (lux)")
	lightingCmd.Flags().Float64Var(&lightingLumens, "lumens", 0, "Luminous flux per lamp (lm) [required]")

	lightingCmd.MarkFlagRequired("length")
	lightingCmd.MarkFlagRequired("width")
	lightingCmd.MarkFlagRequired("lumens")
}

func runLighting(cmd *cobra.Command, args []string) error {
	res, err := formula.LightingLoad(lightingLength, lightingWidth, lightingLux, lightingLumens)
	if err != nil {
		return err
	}
	log.Debugw("lighting estimate", "lumens", res.TotalLumens, "lamps", res.LampCount)

	w := cmd.OutOrStdout()
	printHeader(w, "LIGHTING - LUMEN METHOD")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Room:\t%.2f m x %.2f m\n", lightingLength, lightingWidth)
	fmt.Fprintf(tw, "  Target illuminance:\t%.0f lux\n", lightingLux)
	fmt.Fprintf(tw, "  Utilization / depreciation:\t%.2f / %.2f\n", nbr.UtilizationFactor, nbr.DepreciationFactor)
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	tw = newTable(w)
	fmt.Fprintf(tw, "  Area:\t%.2f m²\n", res.AreaM2)
	fmt.Fprintf(tw, "  Total flux:\t%.0f lm\n", res.TotalLumens)
	fmt.Fprintf(tw, "  Lamps (%.0f lm each):\t%d\n", lightingLumens, res.LampCount)
	tw.Flush()
	fmt.Fprintln(w)
	return nil
}
