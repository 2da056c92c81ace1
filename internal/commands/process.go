package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/wydatki-dev/wydatki/internal/config"
	"github.com/wydatki-dev/wydatki/internal/exporter"
	"github.com/wydatki-dev/wydatki/internal/importer"
	"github.com/wydatki-dev/wydatki/internal/logging"
	"github.com/wydatki-dev/wydatki/internal/process"
)

func newProcessCommand() *cobra.Command {
	var configPath string
	var inputPath string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Import, categorize and export a bank statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if inputPath != "" {
				cfg.Input.Path = inputPath
			}
			return runProcess(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "wydatki.yaml", "path to config file")
	cmd.Flags().StringVar(&inputPath, "input", "", "statement CSV (overrides config)")

	return cmd
}

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runProcess(cfg *config.Config) error {
	logger, closeLog, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info().Str("path", cfg.Input.Path).Msg("importing statement")

	records, encoding, err := importer.ReadStatement(cfg.Input.Path, cfg.Input.Encoding)
	if err != nil {
		return fmt.Errorf("importing statement: %w", err)
	}
	logger.Info().Str("encoding", encoding).Int("rows", len(records)).Msg("statement decoded")

	parser := importer.DefaultRegistry().Get(cfg.Input.Format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", cfg.Input.Format)
	}

	txns, err := parser.Parse(records)
	if err != nil {
		return fmt.Errorf("parsing %s statement: %w", parser.Format(), err)
	}

	rows := process.Run(txns)
	logger.Info().Int("transactions", len(txns)).Int("expenses", len(rows)).Msg("transactions categorized")

	misc := exporter.Unassigned(rows)
	if err := exporter.ExportUnassigned(cfg.Output.Unassigned, misc); err != nil {
		return err
	}
	logger.Info().Int("rows", len(misc)).Str("path", cfg.Output.Unassigned).Msg("unassigned transactions exported")

	if err := exporter.ExportCleaned(cfg.Output.Cleaned, rows); err != nil {
		return err
	}
	logger.Info().Int("rows", len(rows)).Str("path", cfg.Output.Cleaned).Msg("cleaned data exported")

	return nil
}
