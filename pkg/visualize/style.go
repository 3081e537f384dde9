// Package visualize renders the exploratory housing plots to PNG files via
// gonum/plot. Styling and the figures directory are explicit configuration
// passed into every generator; there is no process-wide plotting state.
package visualize

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Style configures figure size, colors and the output directory for all
// plot generators.
type Style struct {
	FiguresDir string
	Width      vg.Length
	Height     vg.Length
	Primary    color.Color // fills and markers
	Accent     color.Color // trend and density lines
	Muted      color.Color // scatter points
}

// DefaultStyle returns the styling used by the housing pipeline, writing
// figures to reports/figures.
func DefaultStyle() Style {
	return Style{
		FiguresDir: filepath.Join("reports", "figures"),
		Width:      10 * vg.Inch,
		Height:     6 * vg.Inch,
		Primary:    color.RGBA{R: 0, G: 128, B: 128, A: 255},
		Accent:     color.RGBA{R: 220, G: 20, B: 60, A: 255},
		Muted:      color.RGBA{R: 128, G: 128, B: 128, A: 90},
	}
}

// save renders the plot as a PNG under the figures directory, creating the
// directory if absent. The output file is closed unconditionally so repeated
// calls never accumulate open handles.
func (s Style) save(p *plot.Plot, filename string) error {
	if err := os.MkdirAll(s.FiguresDir, 0o755); err != nil {
		return fmt.Errorf("visualize: create figures dir: %w", err)
	}
	wt, err := p.WriterTo(s.Width, s.Height, "png")
	if err != nil {
		return fmt.Errorf("visualize: render %s: %w", filename, err)
	}
	f, err := os.Create(filepath.Join(s.FiguresDir, filename))
	if err != nil {
		return fmt.Errorf("visualize: create %s: %w", filename, err)
	}
	defer f.Close()
	if _, err := wt.WriteTo(f); err != nil {
		return fmt.Errorf("visualize: write %s: %w", filename, err)
	}
	return nil
}
