package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/finboard/finboard-cli/internal/metrics"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/render"
)

var (
	seriesFile   string
	seriesSample bool
	seriesField  string
	seriesJSON   bool
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Extract one numeric field across all periods as chart data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !model.ValidField(seriesField) {
			return eris.Errorf("series: unknown field %q (one of: %v)", seriesField, model.NumericFields)
		}

		s, err := loadSession(seriesFile, seriesSample)
		if err != nil {
			return eris.Wrap(err, "series: load dataset")
		}

		field := model.Field(seriesField)
		if seriesJSON {
			return printJSON(render.SeriesChart(s.Periods(), field))
		}

		for _, p := range metrics.Series(s.Periods(), field) {
			fmt.Printf("%s\t%s\n", p.Label, render.FormatAmount(p.Value))
		}
		return nil
	},
}

func init() {
	seriesCmd.Flags().StringVar(&seriesFile, "file", "", "path to CSV, JSON, or XLSX dataset")
	seriesCmd.Flags().BoolVar(&seriesSample, "sample", false, "use the built-in sample dataset")
	seriesCmd.Flags().StringVar(&seriesField, "field", "revenue", "numeric field to extract")
	seriesCmd.Flags().BoolVar(&seriesJSON, "json", false, "print a chart config as JSON")
	rootCmd.AddCommand(seriesCmd)
}
