package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scpulse/internal/config"
	"scpulse/internal/dataset"
	"scpulse/internal/exporter"
	"scpulse/internal/infrastructure"
	"scpulse/internal/services"
)

// Output formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// options holds the flags shared by every subcommand
type options struct {
	configFile string
	source     string
	filePath   string
	sheetName  string
	sheetID    string
	format     string
	output     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "kpictl",
		Short:         "Compute supply chain KPIs from a spreadsheet, CSV or XLSX source",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case FormatJSON, FormatCSV:
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want json or csv)", opts.format)
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configFile, "config", "", "YAML config file (default config.yaml or configs/config.yaml)")
	f.StringVar(&opts.source, "source", "", "data source kind: sheets, csv or xlsx (overrides config)")
	f.StringVar(&opts.filePath, "file", "", "CSV or XLSX file path (overrides config)")
	f.StringVar(&opts.sheetName, "sheet", "", "XLSX sheet name (default first sheet)")
	f.StringVar(&opts.sheetID, "sheet-id", "", "spreadsheet ID for the sheets source (overrides config)")
	f.StringVarP(&opts.format, "format", "f", FormatJSON, "output format: json or csv")
	f.StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newKPIsCmd(opts),
		newInventoryCmd(opts),
		newLogisticsCmd(opts),
		newInsightsCmd(opts),
		newAskCmd(opts),
	)
	return root
}

// loadConfig reads config from env and file, then applies flag overrides
func (o *options) loadConfig() (*config.Config, error) {
	if o.configFile != "" {
		if err := os.Setenv(config.EnvPrefix+"_CONFIG_FILE", o.configFile); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	ds := &cfg.DataSource
	if o.source != "" {
		ds.Kind = strings.ToLower(o.source)
	}
	if o.filePath != "" {
		ds.FilePath = o.filePath
	}
	if o.sheetName != "" {
		ds.SheetName = o.sheetName
	}
	if o.sheetID != "" {
		ds.SheetID = o.sheetID
	}
	cfg.Logging.Level = o.logLevel
	cfg.Logging.Output = "console"
	return cfg, nil
}

// newService builds the supply chain service for one command run. Logs go
// to stderr so stdout carries only the report.
func (o *options) newService(cmd *cobra.Command) (*services.SupplyChainService, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := infrastructure.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	source, err := dataset.NewSource(cfg.DataSource, logger)
	if err != nil {
		return nil, err
	}
	return services.NewSupplyChainService(source, nil, logger), nil
}

// emit writes payload as indented JSON, or reports as consecutive CSV
// blocks separated by a blank line
func (o *options) emit(cmd *cobra.Command, payload interface{}, reports ...exporter.Report) error {
	out := cmd.OutOrStdout()
	if o.output != "" {
		file, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if o.format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	writer := exporter.NewCSVWriter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for i, report := range reports {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if err := writer.WriteReport(out, report); err != nil {
			return err
		}
	}
	return nil
}

// run wraps a command body with the shared service setup
func (o *options) run(body func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := o.newService(cmd)
		if err != nil {
			return err
		}
		return body(cmd.Context(), cmd, svc)
	}
}
