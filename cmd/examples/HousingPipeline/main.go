package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/dataprep"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/loader"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/model"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/report"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/visualize"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input     : Path to the raw housing CSV. Default = housing.csv
// --config    : Optional YAML file overriding pipeline defaults
// --strategy  : Missing-value fill strategy: mean, median or mode
// --test-ratio: Fraction of rows held out for evaluation
// --max-depth : Maximum depth of the decision tree regressor
// --results   : Results directory (default follows the notebooks convention)
// --figures   : Figures directory. Default = reports/figures
// --no-plots  : Skip figure generation
//
// Example:
//   go run ./cmd/examples/HousingPipeline --input housing.csv --strategy median
//
// ---------------------------------------------------------------------
//

func main() {
	configPath := flag.String("config", "", "Path to YAML pipeline config")
	inputPath := flag.String("input", "", "Path to input CSV file")
	strategy := flag.String("strategy", "", "Fill strategy: mean, median or mode")
	testRatio := flag.Float64("test-ratio", 0, "Test split ratio")
	maxDepth := flag.Int("max-depth", 0, "Decision tree max depth")
	resultsDir := flag.String("results", "", "Results output directory")
	figuresDir := flag.String("figures", "", "Figures output directory")
	noPlots := flag.Bool("no-plots", false, "Skip figure generation")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("loading config", "error", err)
		os.Exit(1)
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}
	if *strategy != "" {
		cfg.FillStrategy = *strategy
	}
	if *testRatio > 0 {
		cfg.TestRatio = *testRatio
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *resultsDir != "" {
		cfg.ResultsDir = *resultsDir
	}
	if *figuresDir != "" {
		cfg.FiguresDir = *figuresDir
	}
	if cfg.ResultsDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Error("resolving working directory", "error", err)
			os.Exit(1)
		}
		cfg.ResultsDir = report.DefaultResultsDir(wd)
	}

	// ---- Load ----
	f, err := os.Open(cfg.Input)
	if err != nil {
		log.Error("opening input CSV", "path", cfg.Input, "error", err)
		os.Exit(1)
	}
	df := dataframe.ReadCSV(f)
	f.Close()
	if df.Err != nil {
		log.Error("reading input CSV", "path", cfg.Input, "error", df.Err)
		os.Exit(1)
	}
	log.Info("loaded raw data", "rows", df.Nrow(), "columns", df.Ncol())

	// ---- Clean ----
	df, err = dataprep.Preprocess(df, dataprep.FillStrategy(cfg.FillStrategy))
	if err != nil {
		log.Error("preprocessing", "error", err)
		os.Exit(1)
	}
	df, err = dataprep.RemoveOutliers(df, cfg.OutlierCols)
	if err != nil {
		log.Error("removing outliers", "error", err)
		os.Exit(1)
	}
	log.Info("cleaned data", "rows", df.Nrow(), "columns", df.Ncol())

	// ---- Plots (off the cleaned frame, independent of training) ----
	if !*noPlots {
		style := visualize.DefaultStyle()
		if cfg.FiguresDir != "" {
			style.FiguresDir = cfg.FiguresDir
		}
		renderPlots(log, df, cfg, style)
	}

	// ---- Encode ----
	if frame.HasColumn(df, cfg.CategoryCol) {
		df, err = dataprep.OneHotEncode(df, cfg.CategoryCol)
		if err != nil {
			log.Error("one-hot encoding", "column", cfg.CategoryCol, "error", err)
			os.Exit(1)
		}
	}

	// ---- Feature/target matrices ----
	var featureCols []string
	for _, c := range frame.NumericColumns(df) {
		if c != dataprep.TargetColumn {
			featureCols = append(featureCols, c)
		}
	}
	X, err := frame.Matrix(df, featureCols)
	if err != nil {
		log.Error("building feature matrix", "error", err)
		os.Exit(1)
	}
	y, err := frame.Floats(df, dataprep.TargetColumn)
	if err != nil {
		log.Error("extracting target", "error", err)
		os.Exit(1)
	}

	// ---- Split / Train / Evaluate / Persist ----
	XTrain, XTest, yTrain, yTest := loader.TrainTestSplit(X, y, cfg.TestRatio, cfg.Seed)
	log.Info("split data", "train", len(XTrain), "test", len(XTest), "features", len(featureCols))

	trainers := []struct {
		name string
		m    model.Regressor
		file string
	}{
		{"linear regression", model.NewLinearRegression(), "linear_metrics.json"},
		{"decision tree", model.NewDecisionTreeRegressor(model.WithMaxDepth(cfg.MaxDepth)), "tree_metrics.json"},
	}
	for _, tr := range trainers {
		if err := tr.m.Fit(XTrain, yTrain); err != nil {
			log.Error("training", "model", tr.name, "error", err)
			os.Exit(1)
		}
		metrics, err := model.Evaluate(tr.m, XTest, yTest)
		if err != nil {
			log.Error("evaluating", "model", tr.name, "error", err)
			os.Exit(1)
		}
		path, err := report.Save(metrics, cfg.ResultsDir, tr.file)
		if err != nil {
			log.Error("saving metrics", "model", tr.name, "error", err)
			os.Exit(1)
		}
		log.Info("evaluated model", "model", tr.name, "R2", metrics["R2"], "MSE", metrics["MSE"], "saved", path)
	}
}

// renderPlots draws the fixed set of exploratory figures. Plot failures are
// reported but do not stop the pipeline.
func renderPlots(log *slog.Logger, df dataframe.DataFrame, cfg Config, style visualize.Style) {
	plots := []struct {
		name string
		fn   func() error
	}{
		{"distribution", func() error { return visualize.Distribution(df, dataprep.TargetColumn, style) }},
		{"correlation heatmap", func() error { return visualize.CorrelationHeatmap(df, style) }},
		{"scatter with trend", func() error { return visualize.ScatterWithTrend(df, cfg.ScatterX, cfg.ScatterY, style) }},
		{"categorical counts", func() error { return visualize.CategoricalCounts(df, cfg.CategoryCol, style) }},
		{"outlier boxplots", func() error { return visualize.OutlierBoxplots(df, cfg.OutlierCols, style) }},
		{"violin", func() error { return visualize.ViolinByCategory(df, cfg.CategoryCol, dataprep.TargetColumn, style) }},
	}
	for _, p := range plots {
		if err := p.fn(); err != nil {
			log.Warn("plot failed", "plot", p.name, "error", err)
			continue
		}
		log.Info("rendered plot", "plot", p.name, "dir", style.FiguresDir)
	}
}
