package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/content"
	"folio.dev/internal/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write every revision and the latest project list to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		res, err := export.Write(args[0], content.Revisions(), format)
		if err != nil {
			return err
		}

		for _, f := range res.Files {
			logger.Debug("wrote file", zap.String("file", f))
		}
		logger.Info("export complete",
			zap.String("dir", res.Dir),
			zap.Int("revisions", res.Revisions),
			zap.Int("latest", res.Manifest.Latest))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d revisions to %s\n", res.Revisions, res.Dir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json or yaml)")
}
