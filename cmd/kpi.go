package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finboard/finboard-cli/internal/metrics"
	"github.com/finboard/finboard-cli/internal/render"
)

var (
	kpiFile   string
	kpiSample bool
	kpiFrom   string
	kpiTo     string
	kpiJSON   bool
)

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Compute KPIs and year-over-year deltas for a dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSession(kpiFile, kpiSample)
		if err != nil {
			return eris.Wrap(err, "kpi: load dataset")
		}

		periods := metrics.FilterRange(s.Periods(), kpiFrom, kpiTo)
		if len(periods) == 0 {
			return eris.New("kpi: dataset is empty")
		}

		bundle := metrics.ComputeKPIs(periods)
		zap.L().Debug("kpi computed",
			zap.String("period", bundle.Period),
			zap.Int("periods", len(periods)),
		)

		if kpiJSON {
			return printJSON(bundle)
		}
		printTable(render.KPITable(bundle))
		return nil
	},
}

func init() {
	kpiCmd.Flags().StringVar(&kpiFile, "file", "", "path to CSV, JSON, or XLSX dataset")
	kpiCmd.Flags().BoolVar(&kpiSample, "sample", false, "use the built-in sample dataset")
	kpiCmd.Flags().StringVar(&kpiFrom, "from", "", "range start marker (substring match on period labels)")
	kpiCmd.Flags().StringVar(&kpiTo, "to", "", "range end marker (substring match on period labels)")
	kpiCmd.Flags().BoolVar(&kpiJSON, "json", false, "print the KPI bundle as JSON")
	rootCmd.AddCommand(kpiCmd)
}
