package visualize

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
)

// Distribution renders a normalized histogram with a gaussian kernel
// density line for a numeric column, saved as distribution_<column>.png.
func Distribution(df dataframe.DataFrame, column string, s Style) error {
	vals, err := frame.Floats(df, column)
	if err != nil {
		return err
	}
	valid := frame.DropNaN(vals)
	if len(valid) == 0 {
		return fmt.Errorf("visualize: column %q has no values to plot", column)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution Analysis: %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Density"

	h, err := plotter.NewHist(plotter.Values(valid), 30)
	if err != nil {
		return fmt.Errorf("visualize: histogram for %s: %w", column, err)
	}
	h.Normalize(1)
	h.FillColor = s.Primary
	p.Add(h)

	if len(valid) > 1 {
		bw := silvermanBandwidth(valid)
		grid := kdeGrid(valid, bw, 200)
		density := kde(valid, grid, bw)
		pts := make(plotter.XYs, len(grid))
		for i := range grid {
			pts[i].X = grid[i]
			pts[i].Y = density[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("visualize: density line for %s: %w", column, err)
		}
		l.LineStyle.Color = s.Accent
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
	}

	return s.save(p, fmt.Sprintf("distribution_%s.png", column))
}

// CorrelationHeatmap renders the Pearson correlation matrix of all numeric
// columns as correlation_heatmap.png. Rows containing missing values are
// excluded from the correlation computation.
func CorrelationHeatmap(df dataframe.DataFrame, s Style) error {
	cols := frame.NumericColumns(df)
	if len(cols) == 0 {
		return fmt.Errorf("visualize: frame has no numeric columns")
	}

	colVals := make([][]float64, len(cols))
	for j, c := range cols {
		vals, err := frame.Floats(df, c)
		if err != nil {
			return err
		}
		colVals[j] = vals
	}

	var complete [][]float64
	for i := 0; i < df.Nrow(); i++ {
		row := make([]float64, len(cols))
		ok := true
		for j := range cols {
			v := colVals[j][i]
			if math.IsNaN(v) {
				ok = false
				break
			}
			row[j] = v
		}
		if ok {
			complete = append(complete, row)
		}
	}
	if len(complete) < 2 {
		return fmt.Errorf("visualize: not enough complete rows for correlation")
	}

	data := mat.NewDense(len(complete), len(cols), nil)
	for i, row := range complete {
		data.SetRow(i, row)
	}
	corr := mat.NewSymDense(len(cols), nil)
	stat.CorrelationMatrix(corr, data, nil)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(&corrGrid{m: corr, n: len(cols)}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Feature Correlation Heatmap"
	p.Add(hm)
	p.NominalX(cols...)
	p.NominalY(cols...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	return s.save(p, "correlation_heatmap.png")
}

// corrGrid adapts a symmetric correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	m *mat.SymDense
	n int
}

func (g *corrGrid) Dims() (c, r int)   { return g.n, g.n }
func (g *corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g *corrGrid) X(c int) float64    { return float64(c) }
func (g *corrGrid) Y(r int) float64    { return float64(r) }

// ScatterWithTrend renders a scatter plot of two numeric columns with a
// least-squares trend line, saved as scatter_<x>_vs_<y>.png.
func ScatterWithTrend(df dataframe.DataFrame, xCol, yCol string, s Style) error {
	xs, err := frame.Floats(df, xCol)
	if err != nil {
		return err
	}
	ys, err := frame.Floats(df, yCol)
	if err != nil {
		return err
	}

	var px, py []float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	if len(px) < 2 {
		return fmt.Errorf("visualize: not enough points for scatter %s vs %s", xCol, yCol)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Relationship Analysis: %s vs %s", xCol, yCol)
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol

	pts := make(plotter.XYs, len(px))
	for i := range px {
		pts[i].X = px[i]
		pts[i].Y = py[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("visualize: scatter %s vs %s: %w", xCol, yCol, err)
	}
	sc.GlyphStyle.Color = s.Muted
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)

	alpha, beta := stat.LinearRegression(px, py, nil, false)
	minX, maxX := px[0], px[0]
	for _, v := range px {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}
	trend := plotter.XYs{
		{X: minX, Y: alpha + beta*minX},
		{X: maxX, Y: alpha + beta*maxX},
	}
	l, err := plotter.NewLine(trend)
	if err != nil {
		return fmt.Errorf("visualize: trend line %s vs %s: %w", xCol, yCol, err)
	}
	l.LineStyle.Color = s.Accent
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	return s.save(p, fmt.Sprintf("scatter_%s_vs_%s.png", xCol, yCol))
}

// CategoricalCounts renders category frequencies as a bar chart, saved as
// counts_<column>.png. If the exact column is absent, columns whose names
// contain the requested string are treated as one-hot indicator columns and
// counted by summation, so encoded frames still plot.
func CategoricalCounts(df dataframe.DataFrame, column string, s Style) error {
	var labels []string
	var counts []float64

	if frame.HasColumn(df, column) {
		records := df.Col(column).Records()
		index := map[string]int{}
		for _, v := range records {
			if _, ok := index[v]; !ok {
				index[v] = len(labels)
				labels = append(labels, v)
				counts = append(counts, 0)
			}
			counts[index[v]]++
		}
	} else {
		for _, name := range df.Names() {
			if !strings.Contains(name, column) {
				continue
			}
			vals, err := frame.Floats(df, name)
			if err != nil {
				return err
			}
			sum := 0.0
			for _, v := range vals {
				if !math.IsNaN(v) {
					sum += v
				}
			}
			labels = append(labels, strings.TrimPrefix(name, column+"_"))
			counts = append(counts, sum)
		}
		if len(labels) == 0 {
			return &frame.MissingColumnError{Column: column}
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frequency of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(30))
	if err != nil {
		return fmt.Errorf("visualize: counts for %s: %w", column, err)
	}
	bars.Color = s.Primary
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	return s.save(p, fmt.Sprintf("counts_%s.png", column))
}

// OutlierBoxplots renders grouped box plots for the given numeric columns,
// saved as outlier_boxplots.png.
func OutlierBoxplots(df dataframe.DataFrame, columns []string, s Style) error {
	p := plot.New()
	p.Title.Text = "Outlier Analysis of Key Variables"
	p.Y.Label.Text = "Value"

	for i, col := range columns {
		vals, err := frame.Floats(df, col)
		if err != nil {
			return err
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(frame.DropNaN(vals)))
		if err != nil {
			return fmt.Errorf("visualize: box plot for %s: %w", col, err)
		}
		p.Add(b)
	}
	p.NominalX(columns...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	return s.save(p, "outlier_boxplots.png")
}

// ViolinByCategory renders the density of a numeric column per category as
// mirrored kernel-density polygons, saved as violin_<cat>_<num>.png.
func ViolinByCategory(df dataframe.DataFrame, catCol, numCol string, s Style) error {
	if !frame.HasColumn(df, catCol) {
		return &frame.MissingColumnError{Column: catCol}
	}
	vals, err := frame.Floats(df, numCol)
	if err != nil {
		return err
	}
	records := df.Col(catCol).Records()

	index := map[string]int{}
	var categories []string
	var groups [][]float64
	for i, cat := range records {
		if _, ok := index[cat]; !ok {
			index[cat] = len(categories)
			categories = append(categories, cat)
			groups = append(groups, nil)
		}
		if !math.IsNaN(vals[i]) {
			groups[index[cat]] = append(groups[index[cat]], vals[i])
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Density by %s", numCol, catCol)
	p.X.Label.Text = catCol
	p.Y.Label.Text = numCol

	const halfWidth = 0.4
	for i, group := range groups {
		if len(group) < 2 {
			// too few points for a density: mark the raw values instead
			pts := make(plotter.XYs, len(group))
			for j, v := range group {
				pts[j].X = float64(i)
				pts[j].Y = v
			}
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return fmt.Errorf("visualize: violin for %s: %w", categories[i], err)
			}
			sc.GlyphStyle.Color = s.Primary
			p.Add(sc)
			continue
		}

		bw := silvermanBandwidth(group)
		grid := kdeGrid(group, bw, 100)
		density := kde(group, grid, bw)
		maxD := 0.0
		for _, d := range density {
			if d > maxD {
				maxD = d
			}
		}
		if maxD == 0 {
			continue
		}

		// mirrored outline: up the right side, back down the left
		outline := make(plotter.XYs, 0, 2*len(grid))
		for j := range grid {
			outline = append(outline, plotter.XY{X: float64(i) + density[j]/maxD*halfWidth, Y: grid[j]})
		}
		for j := len(grid) - 1; j >= 0; j-- {
			outline = append(outline, plotter.XY{X: float64(i) - density[j]/maxD*halfWidth, Y: grid[j]})
		}
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return fmt.Errorf("visualize: violin for %s: %w", categories[i], err)
		}
		poly.Color = s.Primary
		poly.LineStyle.Color = s.Accent
		p.Add(poly)
	}
	p.NominalX(categories...)

	return s.save(p, fmt.Sprintf("violin_%s_%s.png", catCol, numCol))
}
