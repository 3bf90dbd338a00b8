// Package main provides the CLI entry point for excelsync-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/excelsync-go/pkg/excelsync"
)

var (
	headerRow int
	logLevel  string
	logger    = slog.New(slog.DiscardHandler)
)

func main() {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelsync",
		Short: "Capture, check and export the structure of Excel files",
		Long: `excelsync-go records the layout of a workbook (sheets, headers, inferred
column types, merged cells, named ranges) as JSON, checks workbooks against
a recorded layout and exports sheet contents as YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger = newLogger(level)
			if headerRow < 1 {
				return fmt.Errorf("invalid header row: %d (must be 1 or greater)", headerRow)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().IntVar(&headerRow, "header-row",
		envInt(envHeaderRow, excelsync.DefaultHeaderRow), "Row containing column headers (env "+envHeaderRow+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level",
		envString(envLogLevel, "WARN"), "Log level: ERROR, WARN, INFO, DEBUG (env "+envLogLevel+")")

	rootCmd.AddCommand(
		newExtractCmd(),
		newValidateCmd(),
		newExportCmd(),
		newTemplateCmd(),
		newJSONSchemaCmd(),
		newValidateDataCmd(),
	)
	return rootCmd
}

func openWorkbook(path string) (*excelsync.Sync, error) {
	return excelsync.Open(path, excelsync.Options{
		HeaderRow: headerRow,
		Logger:    logger,
	})
}
