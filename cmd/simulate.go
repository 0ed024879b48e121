package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/render"
	"github.com/finboard/finboard-cli/internal/scenario"
)

var (
	simFile        string
	simSample      bool
	simScenario    string
	simScenarioDir string
	simJSON        bool

	simRevenueGrowth  float64
	simCOGSMult       float64
	simOpexMult       float64
	simCapexPct       float64
	simDeltaWCPct     float64
	simInterestRate   float64
	simTaxRate        float64
	simFinancingDelta float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project one pro-forma period forward under scenario assumptions",
	Long: `Projects the latest period of a dataset forward under adjustable
assumptions and prints base-vs-scenario comparison tables.

Assumptions come from flags, from a YAML file (--scenario), or from every
YAML file in a directory (--scenario-dir) for batch runs.

Examples:
  # Neutral projection of the sample data
  finboard simulate --sample

  # 10% growth, 25% tax, from flags
  finboard simulate --file data.csv --revenue-growth 0.1 --tax-rate 0.25

  # Batch over a directory of scenario files
  finboard simulate --file data.csv --scenario-dir scenarios/`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSession(simFile, simSample)
		if err != nil {
			return eris.Wrap(err, "simulate: load dataset")
		}

		if simScenarioDir != "" {
			return runScenarioBatch(s.Periods(), simScenarioDir)
		}

		a, err := resolveAssumptions(cmd)
		if err != nil {
			return err
		}

		result, err := scenario.Simulate(s.Periods(), a)
		if err != nil {
			if eris.Is(err, scenario.ErrNoBasePeriod) {
				cmd.Println("no data loaded; nothing to simulate")
				return nil
			}
			return eris.Wrap(err, "simulate: project")
		}

		if simJSON {
			return printJSON(result)
		}
		for _, table := range render.ScenarioTables(result) {
			printTable(table)
		}
		return nil
	},
}

// resolveAssumptions builds the dials from a scenario file when given,
// otherwise from flags layered over neutral defaults.
func resolveAssumptions(cmd *cobra.Command) (scenario.Assumptions, error) {
	if simScenario != "" {
		a, err := scenario.LoadAssumptions(simScenario)
		if err != nil {
			return a, eris.Wrap(err, "simulate: load scenario")
		}
		return a, nil
	}

	a := scenario.Neutral()
	a.RevenueGrowth = simRevenueGrowth
	a.COGSMultiplier = simCOGSMult
	a.OpexMultiplier = simOpexMult
	a.CapexPctOfRevenue = simCapexPct
	a.DeltaWCPctOfDeltaR = simDeltaWCPct
	a.InterestRateOnDebt = simInterestRate
	a.TaxRate = simTaxRate
	a.FinancingDelta = simFinancingDelta
	return a.Clamp(), nil
}

// runScenarioBatch projects every *.yaml scenario in dir concurrently and
// prints a JSON array of results keyed by filename. Individual scenario
// failures are logged, not fatal.
func runScenarioBatch(periods []model.Period, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return eris.Wrap(err, "simulate: read scenario dir")
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && (strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return eris.Errorf("simulate: no scenario files in %s", dir)
	}

	type namedResult struct {
		Scenario string          `json:"scenario"`
		Result   scenario.Result `json:"result"`
	}

	var mu sync.Mutex
	var results []namedResult

	g := new(errgroup.Group)
	g.SetLimit(4)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			a, loadErr := scenario.LoadAssumptions(path)
			if loadErr != nil {
				zap.L().Error("simulate: scenario file failed", zap.String("path", path), zap.Error(loadErr))
				return nil // don't abort batch on individual failure
			}

			result, simErr := scenario.Simulate(periods, a)
			if simErr != nil {
				zap.L().Error("simulate: projection failed", zap.String("path", path), zap.Error(simErr))
				return nil
			}

			mu.Lock()
			results = append(results, namedResult{Scenario: filepath.Base(path), Result: result})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Scenario < results[j].Scenario })

	zap.L().Info("simulate: batch complete",
		zap.Int("scenarios", len(paths)),
		zap.Int("succeeded", len(results)),
	)
	return printJSON(results)
}

func init() {
	simulateCmd.Flags().StringVar(&simFile, "file", "", "path to CSV, JSON, or XLSX dataset")
	simulateCmd.Flags().BoolVar(&simSample, "sample", false, "use the built-in sample dataset")
	simulateCmd.Flags().StringVar(&simScenario, "scenario", "", "path to a YAML scenario file")
	simulateCmd.Flags().StringVar(&simScenarioDir, "scenario-dir", "", "run every YAML scenario in a directory")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "print the full result as JSON")

	simulateCmd.Flags().Float64Var(&simRevenueGrowth, "revenue-growth", 0, "fractional revenue change [-0.5, 0.5]")
	simulateCmd.Flags().Float64Var(&simCOGSMult, "cogs-multiplier", 1, "COGS ratio multiplier [0.5, 1.5]")
	simulateCmd.Flags().Float64Var(&simOpexMult, "opex-multiplier", 1, "OPEX ratio multiplier [0.5, 1.5]")
	simulateCmd.Flags().Float64Var(&simCapexPct, "capex-pct", 0, "capex as fraction of projected revenue [0, 0.3]")
	simulateCmd.Flags().Float64Var(&simDeltaWCPct, "delta-wc-pct", 0, "working capital use per unit of revenue change [-0.5, 0.5]")
	simulateCmd.Flags().Float64Var(&simInterestRate, "interest-rate", 0, "interest rate on projected debt [0, 0.3]")
	simulateCmd.Flags().Float64Var(&simTaxRate, "tax-rate", 0, "tax rate on positive pre-tax income [0, 0.5]")
	simulateCmd.Flags().Float64Var(&simFinancingDelta, "financing-delta", 0, "absolute change to debt [-500, 500]")
	rootCmd.AddCommand(simulateCmd)
}
