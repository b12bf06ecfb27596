package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ljeopp/internal/analysis"
	"github.com/san-kum/ljeopp/internal/config"
	"github.com/san-kum/ljeopp/internal/md"
	"github.com/san-kum/ljeopp/internal/pair"
	"github.com/san-kum/ljeopp/internal/storage"
	"github.com/san-kum/ljeopp/internal/store"
	"github.com/san-kum/ljeopp/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	itype, jtype int
	r, factor    float64
	rmin, rmax   float64
	points       int
	jsonOut      string
	svgOut       string
	fdStep       float64
	fdTol        float64
	length       float64
	winStart     float64
	samples      int

	lattice  int
	spacing  float64
	jitter   float64
	temp     float64
	seed     int64
	workers  int
	newton   bool
	steps    int
	dt       float64
	sample   int
	noSave   bool
	ntypes   int
	writeAll bool
)

var (
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ljeopp",
		Short: "lj/eopp pair potential toolkit",
		RunE:  runExplore,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ljeopp", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print derived coefficients")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "energy and force of one pair",
		RunE:  evalPair,
	}
	pairFlags(evalCmd)
	evalCmd.Flags().Float64Var(&r, "r", 1.5, "pair distance")
	evalCmd.Flags().Float64Var(&factor, "factor", 1.0, "special-bond scaling factor")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "tabulate and plot V(r) and F(r)",
		RunE:  plotCurve,
	}
	pairFlags(curveCmd)
	rangeFlags(curveCmd)
	curveCmd.Flags().StringVar(&jsonOut, "json", "", "write the table as JSON (- for stdout)")
	curveCmd.Flags().StringVar(&svgOut, "svg", "", "write V(r) as an SVG plot")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "finite-difference check of the force",
		RunE:  checkForces,
	}
	pairFlags(checkCmd)
	rangeFlags(checkCmd)
	checkCmd.Flags().Float64Var(&fdStep, "h", 1e-6, "relative finite-difference step")
	checkCmd.Flags().Float64Var(&fdTol, "tol", 1e-5, "maximum relative error")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "one force pass over a jittered lattice",
		RunE:  computeLattice,
	}
	systemFlags(computeCmd)

	mdCmd := &cobra.Command{
		Use:   "md",
		Short: "velocity-Verlet run with energy monitoring",
		RunE:  runMD,
	}
	systemFlags(mdCmd)
	mdCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	mdCmd.Flags().Float64Var(&dt, "dt", 0.002, "timestep")
	mdCmd.Flags().IntVar(&sample, "sample", 10, "energy sample interval")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate k* from the spectrum of the oscillatory term",
		RunE:  analyzeSpectrum,
	}
	pairFlags(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&winStart, "rmin", 2, "window start")
	analyzeCmd.Flags().Float64Var(&length, "length", 8*math.Pi, "window length")
	analyzeCmd.Flags().IntVar(&samples, "n", 1024, "number of samples")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata and coefficients",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "write pair coefficients in data-file format",
		RunE:  writeData,
	}
	dataCmd.Flags().BoolVar(&writeAll, "all", false, "write every pair i <= j")

	extractCmd := &cobra.Command{
		Use:   "extract [name]",
		Short: "print one coefficient as a type matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  extractCoeff,
	}

	restartCmd := &cobra.Command{
		Use:   "restart",
		Short: "binary restart records",
	}
	restartWriteCmd := &cobra.Command{
		Use:   "write [file]",
		Short: "write the restart record of the configured table",
		Args:  cobra.ExactArgs(1),
		RunE:  writeRestart,
	}
	restartReadCmd := &cobra.Command{
		Use:   "read [file]",
		Short: "read a restart record and print its coefficients",
		Args:  cobra.ExactArgs(1),
		RunE:  readRestart,
	}
	restartReadCmd.Flags().IntVar(&ntypes, "ntypes", 1, "number of atom types in the record")
	restartCmd.AddCommand(restartWriteCmd, restartReadCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tNTYPES\tCUTOFF\tSHIFT\tMIX")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%g\t%v\t%s\n", name, p.NTypes, p.Cutoff, p.Shift, p.Mix)
			}
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive k*/phi* explorer",
		RunE:  runExplore,
	}

	rootCmd.AddCommand(evalCmd, curveCmd, checkCmd, computeCmd, mdCmd, analyzeCmd, listCmd, showCmd, dataCmd, extractCmd, restartCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pairFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&itype, "i", 1, "first atom type")
	cmd.Flags().IntVar(&jtype, "j", 1, "second atom type")
}

func rangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rmin, "rmin", 0.9, "smallest distance")
	cmd.Flags().Float64Var(&rmax, "rmax", 0, "largest distance (cutoff if 0)")
	cmd.Flags().IntVar(&points, "n", 200, "number of points")
}

func systemFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&lattice, "lattice", 0, "atoms per box side (0 picks the smallest box covering the cutoff)")
	cmd.Flags().Float64Var(&spacing, "spacing", 1.9, "lattice spacing")
	cmd.Flags().Float64Var(&jitter, "jitter", 0.05, "maximum displacement per coordinate")
	cmd.Flags().Float64Var(&temp, "temp", 0, "initial temperature")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (config value if 0)")
	cmd.Flags().BoolVar(&newton, "newton", true, "newton's third law across ghosts")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
}

// loadConfig applies the preset first and lets a config file override it.
// Without either the oscillatory preset is used.
func loadConfig() (*config.Config, string, error) {
	source := preset
	cfg := config.GetPreset("oscillatory")
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg, source = loaded, configFile
	}
	if source == "" {
		source = "oscillatory"
	}
	return cfg, source, nil
}

func buildTable() (*pair.Table, *config.Config, string, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return nil, nil, "", err
	}
	tbl, err := cfg.Table()
	if err != nil {
		return nil, nil, "", err
	}
	if verbose {
		if err := printDerived(tbl); err != nil {
			return nil, nil, "", err
		}
	}
	return tbl, cfg, source, nil
}

func printDerived(tbl *pair.Table) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "I\tJ\tA=n1*c1\tB=n2*c2\tc1\tc2\tOFFSET\tCUTOFF")
	for i := 1; i <= tbl.NumTypes(); i++ {
		for j := i; j <= tbl.NumTypes(); j++ {
			d, err := tbl.InitOne(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%d\t%g\t%g\t%g\t%g\t%g\t%g\n",
				i, j, d.ForceCoeffA, d.ForceCoeffB, d.EnergyCoeffA, d.EnergyCoeffB, d.EnergyOffset, d.Cutoff)
		}
	}
	return w.Flush()
}

func derivedPair() (*pair.Table, pair.Derived, string, error) {
	tbl, _, source, err := buildTable()
	if err != nil {
		return nil, pair.Derived{}, "", err
	}
	if _, err := tbl.Init(); err != nil {
		return nil, pair.Derived{}, "", err
	}
	d, err := tbl.Derived(itype, jtype)
	if err != nil {
		return nil, pair.Derived{}, "", err
	}
	return tbl, d, source, nil
}

func evalPair(cmd *cobra.Command, args []string) error {
	tbl, _, _, err := derivedPair()
	if err != nil {
		return err
	}
	fforce, energy, err := tbl.Single(itype, jtype, r*r, factor)
	if err != nil {
		return err
	}
	du, du2, err := tbl.BornMatrix(itype, jtype, r*r, factor)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d-%d at r=%g (factor %g)\n", label.Render("pair"), itype, jtype, r, factor)
	fmt.Printf("  %s %.10g\n", label.Render("energy "), energy)
	fmt.Printf("  %s %.10g\n", label.Render("force  "), fforce*r)
	fmt.Printf("  %s %.10g\n", label.Render("fpair  "), fforce)
	fmt.Printf("  %s %.10g\n", label.Render("dU/dr  "), du)
	fmt.Printf("  %s %.10g\n", label.Render("d2U/dr2"), du2)
	if fforce == 0 && energy == 0 {
		fmt.Println(dim.Render("  beyond cutoff"))
	}
	return nil
}

func plotRange(d pair.Derived) (float64, float64) {
	hi := rmax
	if hi == 0 {
		hi = d.Cutoff
	}
	return rmin, hi
}

func plotCurve(cmd *cobra.Command, args []string) error {
	_, d, source, err := derivedPair()
	if err != nil {
		return err
	}
	lo, hi := plotRange(d)
	table, err := analysis.Tabulate(&d, lo, hi, points)
	if err != nil {
		return err
	}

	if jsonOut != "" {
		data := &store.CurveData{Source: source, I: itype, J: jtype, Coeffs: d, Points: table}
		if jsonOut == "-" {
			return store.ExportJSONStdout(data)
		}
		if err := store.ExportJSON(jsonOut, data); err != nil {
			return err
		}
		fmt.Printf("wrote %d points to %s\n", len(table), jsonOut)
	}

	energies := clip(analysis.Energies(table))
	if svgOut != "" {
		if err := store.ExportSVG(svgOut, table, maxAbs(energies)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	forces := clip(analysis.Forces(table))
	fmt.Println(asciigraph.Plot(energies,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("V(r) %d-%d, r in [%.2f, %.2f]", itype, jtype, lo, hi)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(forces,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("F(r) = -dV/dr"),
	))
	if well, ok := analysis.Minimum(table); ok {
		fmt.Printf("\n%s r=%.5f V=%.6g\n", label.Render("well"), well.R, well.Energy)
	}
	return nil
}

// clip bounds a series at ten times its median magnitude so the repulsive
// wall does not flatten the plot.
func clip(data []float64) []float64 {
	mags := make([]float64, len(data))
	for i, v := range data {
		mags[i] = math.Abs(v)
	}
	sorted := append([]float64(nil), mags...)
	sort.Float64s(sorted)
	bound := 10 * sorted[len(sorted)/2]
	if bound == 0 {
		return data
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = math.Max(-bound, math.Min(bound, v))
	}
	return out
}

func maxAbs(data []float64) float64 {
	m := 0.0
	for _, v := range data {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func checkForces(cmd *cobra.Command, args []string) error {
	_, d, _, err := derivedPair()
	if err != nil {
		return err
	}
	lo, hi := plotRange(d)
	table, err := analysis.Tabulate(&d, lo, hi, points)
	if err != nil {
		return err
	}
	radii := make([]float64, len(table))
	for i, p := range table {
		radii[i] = p.R
	}
	checks := analysis.CheckForces(&d, radii, fdStep)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "R\tANALYTIC\tNUMERIC\tREL ERR")
	stride := max(len(checks)/20, 1)
	for n, c := range checks {
		if n%stride == 0 || c.RelErr > fdTol {
			fmt.Fprintf(w, "%.4f\t%.8g\t%.8g\t%.2e\n", c.R, c.Analytic, c.Numeric, c.RelErr)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	worst := analysis.MaxRelError(checks)
	fmt.Printf("\n%s %.3e over %d radii\n", label.Render("max relative error"), worst, len(checks))
	if worst > fdTol {
		return fmt.Errorf("force check failed: %.3e > %.3e", worst, fdTol)
	}
	return nil
}

func newSystem(cfg *config.Config, cut float64) (*md.System, error) {
	n := lattice
	if n == 0 && spacing > 0 {
		n = max(int(math.Ceil(cut/spacing)), 2)
	}
	sys, err := md.Lattice(n, spacing, cfg.NTypes, jitter, seed)
	if err != nil {
		return nil, err
	}
	if temp > 0 {
		sys.Thermalize(temp, seed+1)
	}
	return sys, nil
}

func newForceField(cmd *cobra.Command, tbl *pair.Table, cfg *config.Config) (*md.ForceField, error) {
	nw := cfg.Newton
	if cmd.Flags().Changed("newton") {
		nw = newton
	}
	wk := cfg.Workers
	if workers > 0 {
		wk = workers
	}
	return md.NewForceField(tbl, nw, wk)
}

func computeLattice(cmd *cobra.Command, args []string) error {
	tbl, cfg, source, err := buildTable()
	if err != nil {
		return err
	}
	ff, err := newForceField(cmd, tbl, cfg)
	if err != nil {
		return err
	}
	sys, err := newSystem(cfg, ff.Cutoff())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	start := time.Now()
	snap, err := ff.Compute(ctx, sys)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printSnapshot(sys, snap)
	fmt.Printf("  %s %v\n", label.Render("elapsed "), elapsed)

	if noSave {
		return nil
	}
	return saveRun(&storage.Run{
		Meta: storage.RunMetadata{
			Kind:    "compute",
			Source:  source,
			Seed:    seed,
			Atoms:   sys.Len(),
			Newton:  ff.Newton(),
			Workers: ff.Workers(),
			Cutoff:  ff.Cutoff(),
			Energy:  snap.Tally.Energy,
			Virial:  snap.Tally.Virial,
			Metrics: map[string]float64{
				"pairs":    float64(snap.Pairs),
				"ghosts":   float64(snap.Ghosts),
				"pressure": md.Pressure(sys, snap.Tally),
			},
		},
		Forces: snap.Forces,
		Table:  tbl,
	})
}

func printSnapshot(sys *md.System, snap *md.Snapshot) {
	fmt.Printf("%s %d atoms, %d ghosts, %d pairs, box %.4g\n",
		label.Render("system"), sys.Len(), snap.Ghosts, snap.Pairs, sys.Box)
	fmt.Printf("  %s %.10g (%.6g per atom)\n", label.Render("energy  "), snap.Tally.Energy, snap.Tally.Energy/float64(sys.Len()))
	v := snap.Tally.Virial
	fmt.Printf("  %s xx=%.6g yy=%.6g zz=%.6g xy=%.6g xz=%.6g yz=%.6g\n", label.Render("virial  "), v[0], v[1], v[2], v[3], v[4], v[5])
	fmt.Printf("  %s %.6g\n", label.Render("pressure"), md.Pressure(sys, snap.Tally))

	var net [3]float64
	fmax := 0.0
	for _, f := range snap.Forces {
		for d := 0; d < 3; d++ {
			net[d] += f[d]
		}
		fmax = math.Max(fmax, math.Sqrt(f[0]*f[0]+f[1]*f[1]+f[2]*f[2]))
	}
	fmt.Printf("  %s %.3g  %s (%.2e, %.2e, %.2e)\n", label.Render("max |F| "), fmax, dim.Render("net"), net[0], net[1], net[2])
}

func runMD(cmd *cobra.Command, args []string) error {
	tbl, cfg, source, err := buildTable()
	if err != nil {
		return err
	}
	ff, err := newForceField(cmd, tbl, cfg)
	if err != nil {
		return err
	}
	sys, err := newSystem(cfg, ff.Cutoff())
	if err != nil {
		return err
	}

	integ := md.NewVerlet()
	integ.AddMetric(md.NewEnergyDrift())
	integ.AddMetric(md.NewMeanEnergy())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	runCfg := md.Config{Dt: dt, Steps: steps, SampleEvery: sample, ValidateState: true}
	start := time.Now()
	result, err := integ.Run(ctx, ff, sys, runCfg)
	if err != nil {
		if errors.Is(err, context.Canceled) && result != nil {
			fmt.Println(warn.Render(fmt.Sprintf("interrupted after %d steps", result.StepsTaken)))
		}
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(asciigraph.Plot(result.Total,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))
	fmt.Println()
	fmt.Printf("%s %s\n", label.Render("run"), result)
	fmt.Printf("  %s %.3e\n", label.Render("energy drift"), result.Metrics["energy_drift"])
	fmt.Printf("  %s %.4g\n", label.Render("temperature "), sys.Temperature())
	fmt.Printf("  %s %.0f steps/s\n", label.Render("throughput  "), float64(result.StepsTaken)/elapsed.Seconds())

	if noSave {
		return nil
	}
	result.Metrics["temperature"] = sys.Temperature()
	return saveRun(&storage.Run{
		Meta: storage.RunMetadata{
			Kind:    "md",
			Source:  source,
			Seed:    seed,
			Atoms:   sys.Len(),
			Newton:  ff.Newton(),
			Workers: ff.Workers(),
			Cutoff:  ff.Cutoff(),
			Steps:   result.StepsTaken,
			Dt:      dt,
			Energy:  result.Final.Tally.Energy,
			Virial:  result.Final.Tally.Virial,
			Metrics: result.Metrics,
		},
		Forces: result.Final.Forces,
		Table:  tbl,
	})
}

func saveRun(run *storage.Run) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(run)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("\n%s %s\n", dim.Render("saved"), id)
	return nil
}

func analyzeSpectrum(cmd *cobra.Command, args []string) error {
	_, d, _, err := derivedPair()
	if err != nil {
		return err
	}
	k, err := analysis.DominantWaveNumber(&d, winStart, length, samples)
	if err != nil {
		return err
	}

	dr := length / float64(samples)
	osc := make([]float64, samples)
	for i := range osc {
		osc[i] = analysis.Oscillation(&d, winStart+float64(i)*dr)
	}
	ks, power := analysis.PowerSpectrum(osc, dr)
	shown := len(power)
	for shown > 8 && ks[shown-1] > 4*math.Max(k, d.KStar)+1 {
		shown--
	}
	fmt.Println(asciigraph.Plot(power[:shown],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|X(k)|, k in [0, %.2f]", ks[shown-1])),
	))
	fmt.Printf("\n%s %.5f\n", label.Render("estimated k*"), k)
	fmt.Printf("%s %.5f\n", label.Render("configured k*"), d.KStar)
	fmt.Printf("%s %.3g\n", dim.Render("resolution"), ks[1])
	return nil
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
	fmt.Fprintln(w, "ID\tKIND\tSOURCE\tTIME\tATOMS\tSTEPS\tENERGY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.6g\n",
			run.ID,
			run.Kind,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Atoms,
			run.Steps,
			run.Energy,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s from %s)\n", label.Render("run"), meta.ID, meta.Kind, meta.Source)
	fmt.Printf("  %s %d atoms, %d types, cutoff %g, newton %v\n", label.Render("system"), meta.Atoms, meta.NTypes, meta.Cutoff, meta.Newton)
	fmt.Printf("  %s %.10g\n", label.Render("energy"), meta.Energy)
	if meta.Steps > 0 {
		fmt.Printf("  %s %d x %g\n", label.Render("steps "), meta.Steps, meta.Dt)
	}
	for name, v := range meta.Metrics {
		fmt.Printf("  %s %.6g\n", dim.Render(fmt.Sprintf("%-12s", name)), v)
	}

	forces, err := st.LoadForces(meta.ID)
	if err != nil {
		return err
	}
	fmax := 0.0
	for _, f := range forces {
		fmax = math.Max(fmax, math.Sqrt(f[0]*f[0]+f[1]*f[1]+f[2]*f[2]))
	}
	fmt.Printf("  %s %d rows, max |F| %.4g\n", label.Render("forces"), len(forces), fmax)

	tbl, err := st.LoadRestart(meta.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	return tbl.WriteDataAll(os.Stdout)
}

func writeData(cmd *cobra.Command, args []string) error {
	tbl, _, _, err := buildTable()
	if err != nil {
		return err
	}
	if _, err := tbl.Init(); err != nil {
		return err
	}
	if writeAll {
		return tbl.WriteDataAll(os.Stdout)
	}
	return tbl.WriteData(os.Stdout)
}

func extractCoeff(cmd *cobra.Command, args []string) error {
	tbl, _, _, err := buildTable()
	if err != nil {
		return err
	}
	if _, err := tbl.Init(); err != nil {
		return err
	}
	m, ok := tbl.Extract(args[0])
	if !ok {
		return fmt.Errorf("unknown coefficient %q", args[0])
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "I\\J")
	for j := 1; j < len(m); j++ {
		fmt.Fprintf(w, "\t%d", j)
	}
	fmt.Fprintln(w)
	for i := 1; i < len(m); i++ {
		fmt.Fprintf(w, "%d", i)
		for j := 1; j < len(m); j++ {
			fmt.Fprintf(w, "\t%g", m[i][j])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func writeRestart(cmd *cobra.Command, args []string) error {
	tbl, cfg, _, err := buildTable()
	if err != nil {
		return err
	}
	if err := storage.WriteRestart(args[0], tbl); err != nil {
		return err
	}
	fmt.Printf("wrote restart for %d types to %s\n", cfg.NTypes, args[0])
	return nil
}

func readRestart(cmd *cobra.Command, args []string) error {
	tbl, err := storage.ReadRestart(args[0], ntypes)
	if err != nil {
		return err
	}
	s := tbl.Settings()
	fmt.Printf("%s cutoff %g, shift %v, mix %s\n", label.Render("settings"), s.Cutoff, s.Shift, s.Mix)
	if err := tbl.WriteDataAll(os.Stdout); err != nil {
		return err
	}
	cutmax, err := tbl.Init()
	if err != nil {
		fmt.Println(warn.Render("init: " + err.Error()))
		return nil
	}
	fmt.Printf("%s max cutoff %g\n", label.Render("init ok"), cutmax)
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	tbl, _, _, err := buildTable()
	if err != nil {
		return err
	}
	p, err := tbl.Params(1, 1)
	if err != nil {
		return err
	}
	if !p.Set {
		return fmt.Errorf("pair 1 1 has no coefficients to explore")
	}
	c := pair.Coeff{
		Epsilon: p.Epsilon, Sigma: p.Sigma, Cutoff: p.Cutoff,
		C1: p.C1, N1: p.N1, C2: p.C2, N2: p.N2,
		KStar: p.KStar, PhiStar: p.PhiStar,
	}
	return tui.RunExplorer(c, tbl.Settings())
}
