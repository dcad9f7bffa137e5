package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/stochlab/internal/config"
	"github.com/san-kum/stochlab/internal/corr"
	"github.com/san-kum/stochlab/internal/noise"
	"github.com/san-kum/stochlab/internal/poly"
	"github.com/san-kum/stochlab/internal/process"
	"github.com/san-kum/stochlab/internal/stoch"
	"github.com/san-kum/stochlab/internal/tui"
	"github.com/san-kum/stochlab/internal/viz"
)

var (
	n          int
	seed       int64
	drift      float64
	volatility float64
	dt         float64
	phi        []float64
	maxLag     int
	useDiff    bool
	useFFT     bool
	csvOut     string
	jsonOut    string
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stochlab",
		Short: "stochastic process generation and correlation lab",
	}

	generateCmd := &cobra.Command{
		Use:   "generate [model]",
		Short: "generate a sample path",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	addModelFlags(generateCmd)
	generateCmd.Flags().StringVar(&csvOut, "csv", "", "write path to CSV file ('-' for stdout)")
	generateCmd.Flags().StringVar(&jsonOut, "json", "", "write path to JSON file ('-' for stdout)")

	acfCmd := &cobra.Command{
		Use:   "acf [model]",
		Short: "generate a path and plot its autocorrelation",
		Args:  cobra.ExactArgs(1),
		RunE:  runACF,
	}
	addModelFlags(acfCmd)
	acfCmd.Flags().IntVar(&maxLag, "maxlag", config.DefaultMaxLag, "maximum lag")
	acfCmd.Flags().BoolVar(&useDiff, "diff", false, "difference the path first")
	acfCmd.Flags().BoolVar(&useFFT, "fft", false, "use the FFT estimator")

	pacfCmd := &cobra.Command{
		Use:   "pacf [model]",
		Short: "generate a path and plot its partial autocorrelation",
		Args:  cobra.ExactArgs(1),
		RunE:  runPACF,
	}
	addModelFlags(pacfCmd)
	pacfCmd.Flags().IntVar(&maxLag, "maxlag", config.DefaultMaxLag, "maximum lag")
	pacfCmd.Flags().BoolVar(&useDiff, "diff", false, "difference the path first")

	rootsCmd := &cobra.Command{
		Use:   "roots",
		Short: "characteristic roots and stationarity of AR coefficients",
		RunE:  runRoots,
	}
	rootsCmd.Flags().Float64SliceVar(&phi, "phi", []float64{0.7}, "AR coefficients")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "replay path generation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(generateCmd, acfCmd, pacfCmd, rootsCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", config.DefaultN, "path length")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&drift, "drift", config.DefaultDrift, "drift per step (brownian)")
	cmd.Flags().Float64Var(&volatility, "volatility", config.DefaultVolatility, "volatility scale (brownian)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step (brownian)")
	cmd.Flags().Float64SliceVar(&phi, "phi", []float64{0.7}, "AR coefficients")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig applies preset then config-file values, with explicitly
// set CLI flags winning over both.
func resolveConfig(cmd *cobra.Command, model string) error {
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}
	return nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("n") && cfg.N > 0 {
		n = cfg.N
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	if !cmd.Flags().Changed("drift") {
		drift = cfg.Params.Drift
	}
	if !cmd.Flags().Changed("volatility") {
		volatility = cfg.Params.Volatility
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Params.Dt
	}
	if !cmd.Flags().Changed("phi") && len(cfg.Params.Coeffs) > 0 {
		phi = cfg.Params.Coeffs
	}
	if f := cmd.Flags().Lookup("maxlag"); f != nil && !f.Changed && cfg.MaxLag > 0 {
		maxLag = cfg.MaxLag
	}
}

func generatePath(cmd *cobra.Command, model string) (stoch.Generator, stoch.Series, error) {
	if err := resolveConfig(cmd, model); err != nil {
		return nil, nil, err
	}

	registry := process.NewRegistry()
	params := map[string]float64{"drift": drift, "volatility": volatility, "dt": dt}
	gen, err := registry.Get(model, params, phi)
	if err != nil {
		return nil, nil, err
	}

	src := noise.NewSource(seed)
	path, err := gen.Generate(src.StandardNormal(n))
	if err != nil {
		return nil, nil, err
	}
	return gen, path, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	model := args[0]
	gen, path, err := generatePath(cmd, model)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model:\t%s\n", model)
	fmt.Fprintf(w, "n:\t%d\n", len(path))
	fmt.Fprintf(w, "seed:\t%d\n", seed)
	fmt.Fprintf(w, "mean:\t%.6f\n", path.Mean())
	fmt.Fprintf(w, "variance:\t%.6f\n", path.Variance())
	fmt.Fprintf(w, "min:\t%.6f\n", path.Min())
	fmt.Fprintf(w, "max:\t%.6f\n", path.Max())
	if ar, ok := gen.(*process.AR); ok && ar.Order() > 0 {
		stationary, err := ar.Stationary()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "stationary:\t%v\n", stationary)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.PlotPath(path, fmt.Sprintf("%s path (n=%d)", model, len(path))))

	if csvOut != "" {
		if err := writeCSV(csvOut, path); err != nil {
			return err
		}
	}
	if jsonOut != "" {
		if err := writeJSON(jsonOut, model, path); err != nil {
			return err
		}
	}
	return nil
}

func estimationInput(cmd *cobra.Command, args []string) (stoch.Series, string, error) {
	model := args[0]
	_, path, err := generatePath(cmd, model)
	if err != nil {
		return nil, "", err
	}

	label := model
	if useDiff {
		path, err = corr.Difference(path)
		if err != nil {
			return nil, "", err
		}
		label = "diff(" + model + ")"
	}
	return path, label, nil
}

func runACF(cmd *cobra.Command, args []string) error {
	path, label, err := estimationInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := corr.ACFWithConfidence(path, maxLag)
	if err != nil {
		return err
	}
	if useFFT {
		result.Values, err = corr.ACFFFT(path, maxLag)
		if err != nil {
			return err
		}
	}

	fmt.Println(viz.Correlogram(
		fmt.Sprintf("ACF of %s (n=%d)", label, len(path)),
		result.Lags, result.Values, result.ConfBound, nil,
	))
	fmt.Printf("significant lags: %v\n", corr.SignificantLags(result.Values, result.ConfBound))
	return nil
}

func runPACF(cmd *cobra.Command, args []string) error {
	path, label, err := estimationInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := corr.PACF(path, maxLag)
	if err != nil {
		return err
	}

	fmt.Println(viz.Correlogram(
		fmt.Sprintf("PACF of %s (n=%d)", label, len(path)),
		result.Lags, result.Values, result.ConfBound, result.Degenerate,
	))
	fmt.Printf("significant lags: %v\n", corr.SignificantLags(result.Values, result.ConfBound))
	if result.AnyDegenerate() {
		fmt.Println("warning: degenerate lags present, recursion denominator near zero")
	}
	return nil
}

func runRoots(cmd *cobra.Command, args []string) error {
	roots, err := poly.Roots(poly.ARCharacteristic(phi))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "root\tmodulus")
	for _, r := range roots {
		fmt.Fprintf(w, "%.6f%+.6fi\t%.6f\n", real(r), imag(r), cmplx.Abs(r))
	}
	w.Flush()

	stationary, err := poly.Stationary(phi)
	if err != nil {
		return err
	}
	fmt.Printf("stationary: %v\n", stationary)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model := args[0]
	_, path, err := generatePath(cmd, model)
	if err != nil {
		return err
	}
	return tui.Run(model, path, frameRate)
}

func writeCSV(path string, series stoch.Series) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range series {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type exportData struct {
	Model string    `json:"model"`
	N     int       `json:"n"`
	Seed  int64     `json:"seed"`
	Path  []float64 `json:"path"`
}

func writeJSON(path, model string, series stoch.Series) error {
	data, err := json.MarshalIndent(exportData{
		Model: model,
		N:     len(series),
		Seed:  seed,
		Path:  series,
	}, "", "  ")
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
