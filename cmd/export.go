package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFile   string
	exportSample bool
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset as pretty-printed JSON or canonical CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("export"); err != nil {
			return err
		}

		s, err := loadSession(exportFile, exportSample)
		if err != nil {
			return eris.Wrap(err, "export: load dataset")
		}

		out := exportOut
		if out == "" {
			out = cfg.Export.Filename
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = s.ExportJSON()
			if err != nil {
				return err
			}
		case "csv":
			data = []byte(s.ExportCSV())
		default:
			return eris.Errorf("export: unknown format %q (json or csv)", exportFormat)
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return eris.Wrap(err, "export: write file")
		}

		zap.L().Info("export complete",
			zap.String("path", out),
			zap.String("format", exportFormat),
			zap.Int("periods", s.Len()),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "path to CSV, JSON, or XLSX dataset")
	exportCmd.Flags().BoolVar(&exportSample, "sample", false, "use the built-in sample dataset")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default from config, financials.json)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or csv")
	rootCmd.AddCommand(exportCmd)
}
