package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/alexiusacademia/gocable/internal/sizing"
)

// ExportSizingChart plots voltage drop (%) against cross-section with the
// drop limit and the recommended section. The format follows the file
// extension (png, svg, pdf); anything else gets ".png" appended. It
// returns the path actually written.
func ExportSizingChart(res *sizing.Result, filename string) (string, error) {
	if len(res.Rows) == 0 {
		return "", fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Voltage Drop by Cross-Section"
	p.X.Label.Text = "Cross-section (mm²)"
	p.Y.Label.Text = "Voltage drop (%)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	sections := make([]float64, len(res.Rows))
	drops := make(plotter.XYs, len(res.Rows))
	var overloaded plotter.XYs
	for i, row := range res.Rows {
		sections[i] = row.SectionMM2
		drops[i] = plotter.XY{X: row.SectionMM2, Y: row.DropPct}
		if row.AmpacityExceeded {
			overloaded = append(overloaded, drops[i])
		}
	}

	dropLine, err := plotter.NewLine(drops)
	if err != nil {
		return "", err
	}
	dropLine.LineStyle.Width = vg.Points(2)
	dropLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(dropLine)
	p.Legend.Add("drop", dropLine)

	// Drop limit
	minX, maxX := floats.Min(sections), floats.Max(sections)
	limitLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: nbr.MaxVoltageDropPct},
		{X: maxX, Y: nbr.MaxVoltageDropPct},
	})
	if err != nil {
		return "", err
	}
	limitLine.LineStyle.Width = vg.Points(1.5)
	limitLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limitLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limitLine)
	p.Legend.Add(fmt.Sprintf("%.0f%% limit", nbr.MaxVoltageDropPct), limitLine)

	if len(overloaded) > 0 {
		over, err := plotter.NewScatter(overloaded)
		if err != nil {
			return "", err
		}
		over.GlyphStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		over.GlyphStyle.Radius = vg.Points(4)
		over.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(over)
		p.Legend.Add("ampacity exceeded", over)
	}

	if rec := res.Recommended; rec != nil {
		recPt, err := plotter.NewScatter(plotter.XYs{{X: rec.SectionMM2, Y: rec.DropPct}})
		if err != nil {
			return "", err
		}
		recPt.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
		recPt.GlyphStyle.Radius = vg.Points(6)
		recPt.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(recPt)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: rec.SectionMM2, Y: rec.DropPct}},
			Labels: []string{fmt.Sprintf("  %g mm²", rec.SectionMM2)},
		})
		if err != nil {
			return "", err
		}
		p.Add(lbl)
	}

	p.Y.Min = 0

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
