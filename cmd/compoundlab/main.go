package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"compoundlab/internal/config"
	"compoundlab/internal/export"
	"compoundlab/internal/growth"
	"compoundlab/internal/storage"
	"compoundlab/internal/viz"
)

var (
	dataDir string

	principal float64
	rate      float64
	interval  string
	deposit   float64
	years     int

	configFile string
	preset     string
	saveRun    bool

	outPath string

	sweepFrom float64
	sweepTo   float64
	sweepStep float64
)

func main() {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(os.Getenv("COMPOUNDLAB_LOG"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	defaultData := os.Getenv("COMPOUNDLAB_DATA")
	if defaultData == "" {
		defaultData = ".compoundlab"
	}

	rootCmd := &cobra.Command{
		Use:   "compoundlab",
		Short: "compound interest calculator and visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given.
			return viz.RunInteractive(storage.New(dataDir))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultData, "results directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&principal, "principal", config.DefaultPrincipal, "initial amount")
	runCmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "annual interest percentage")
	runCmd.Flags().StringVar(&interval, "interval", config.DefaultInterval, "deposit interval (daily/weekly/monthly/yearly)")
	runCmd.Flags().Float64Var(&deposit, "deposit", config.DefaultDeposit, "regular deposit amount")
	runCmd.Flags().IntVar(&years, "years", config.DefaultYears, "number of years")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset plan")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the results directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export schedule to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [run_id]",
		Short: "export schedule to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  exportXLSX,
	}
	exportXLSXCmd.Flags().StringVar(&outPath, "out", "", "output path (default <run>/schedule.xlsx)")

	chartsCmd := &cobra.Command{
		Use:   "charts [run_id]",
		Short: "render SVG charts for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  renderCharts,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare outcomes across a range of rates",
		RunE:  sweepRates,
	}
	sweepCmd.Flags().Float64Var(&principal, "principal", config.DefaultPrincipal, "initial amount")
	sweepCmd.Flags().StringVar(&interval, "interval", config.DefaultInterval, "deposit interval")
	sweepCmd.Flags().Float64Var(&deposit, "deposit", config.DefaultDeposit, "regular deposit amount")
	sweepCmd.Flags().IntVar(&years, "years", config.DefaultYears, "number of years")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1.0, "first annual rate")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10.0, "last annual rate")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1.0, "rate step")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPRINCIPAL\tRATE\tINTERVAL\tDEPOSIT\tYEARS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f%%\t%s\t%.2f\t%d\n",
					name, p.Principal, p.Rate, p.Interval, p.Deposit, p.Years)
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(storage.New(dataDir))
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportXLSXCmd, chartsCmd, sweepCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, preset, config file and CLI flags, in
// increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("principal") {
		cfg.Principal = principal
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = rate
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = interval
	}
	if cmd.Flags().Changed("deposit") {
		cfg.Deposit = deposit
	}
	if cmd.Flags().Changed("years") {
		cfg.Years = years
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	result, err := growth.Simulate(params)
	if err != nil {
		return err
	}

	log.Debug().Int("periods", len(result.Schedule)).Msg("simulation complete")

	fmt.Println(viz.SummaryPanel(result.Summary))
	printYearlyTable(result.Yearly())

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		log.Info().Str("run", runID).Str("dir", st.Dir(runID)).Msg("saved run")
	}

	return nil
}

func printYearlyTable(yearly []growth.PeriodRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "YEAR\tINVESTED\tBALANCE\tINTEREST")
	for i, rec := range yearly {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			viz.FormatCurrency(rec.Invested),
			viz.FormatCurrency(rec.Balance),
			viz.FormatCurrency(rec.Interest),
		)
	}
	w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPRINCIPAL\tRATE\tINTERVAL\tDEPOSIT\tYEARS\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f%%\t%s\t%.2f\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Principal,
			run.Rate,
			run.Interval,
			run.Deposit,
			run.Years,
			viz.FormatCurrency(run.Summary.Balance),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	schedule, err := st.LoadSchedule(args[0])
	if err != nil {
		return err
	}
	if len(schedule) == 0 {
		return fmt.Errorf("no data to plot")
	}

	iv, err := growth.ParseInterval(meta.Interval)
	if err != nil {
		return err
	}

	// Sample the stored schedule at year boundaries.
	perYear := iv.PeriodsPerYear()
	yearly := make([]growth.PeriodRecord, 0, meta.Years)
	for i := perYear - 1; i < len(schedule); i += perYear {
		yearly = append(yearly, schedule[i])
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("plan: %.2f at %.2f%% + %.2f %s for %d years\n\n",
		meta.Principal, meta.Rate, meta.Deposit, meta.Interval, meta.Years)
	fmt.Println(viz.GrowthPlots(yearly, 80, 10))

	return nil
}

// reconstruct re-runs a stored plan. Simulate is deterministic, so the
// result matches the stored schedule (which was rounded on write).
func reconstruct(st *storage.Store, runID string) (*growth.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, err
	}

	iv, err := growth.ParseInterval(meta.Interval)
	if err != nil {
		return nil, err
	}

	return growth.Simulate(growth.Params{
		Principal:         meta.Principal,
		AnnualRatePercent: meta.Rate,
		Interval:          iv,
		Deposit:           meta.Deposit,
		Years:             meta.Years,
	})
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	result, err := reconstruct(storage.New(dataDir), args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, result.Schedule)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	result, err := reconstruct(storage.New(dataDir), args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, result)
}

func exportXLSX(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := reconstruct(st, args[0])
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = filepath.Join(st.Dir(args[0]), "schedule.xlsx")
	}

	if err := export.WriteXLSX(path, result); err != nil {
		return err
	}

	log.Info().Str("path", path).Msg("wrote workbook")
	return nil
}

func renderCharts(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := reconstruct(st, args[0])
	if err != nil {
		return err
	}

	if err := export.WriteCharts(st.Dir(args[0]), result); err != nil {
		return err
	}

	log.Info().Str("dir", filepath.Join(st.Dir(args[0]), "graphs")).Msg("wrote charts")
	return nil
}

func sweepRates(cmd *cobra.Command, args []string) error {
	if sweepStep <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if sweepTo < sweepFrom {
		return fmt.Errorf("to must be at least from")
	}

	iv, err := growth.ParseInterval(interval)
	if err != nil {
		return err
	}

	rates := make([]float64, 0)
	for r := sweepFrom; r <= sweepTo+1e-9; r += sweepStep {
		rates = append(rates, r)
	}

	bar := progressbar.Default(int64(len(rates)))
	results := make([]*growth.Result, 0, len(rates))

	for _, r := range rates {
		result, err := growth.Simulate(growth.Params{
			Principal:         principal,
			AnnualRatePercent: r,
			Interval:          iv,
			Deposit:           deposit,
			Years:             years,
		})
		if err != nil {
			return err
		}
		results = append(results, result)
		_ = bar.Add(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "RATE\tINVESTED\tBALANCE\tINTEREST\tROI")
	for i, result := range results {
		s := result.Summary
		fmt.Fprintf(w, "%.2f%%\t%s\t%s\t%s\t%.2f%%\n",
			rates[i],
			viz.FormatCurrency(s.Invested),
			viz.FormatCurrency(s.Balance),
			viz.FormatCurrency(s.Interest),
			s.ROIPercent,
		)
	}

	return w.Flush()
}
