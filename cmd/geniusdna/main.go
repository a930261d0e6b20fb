// Package main provides the geniusdna command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/geniusdna/geniusdna/internal/parser"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const configName = ".geniusdna"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintf(stderr, "Hint: %s\n", hint)
		}
		return ExitError
	}
	return ExitSuccess
}

func hintFor(err error) string {
	var serr *parser.SampleError
	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		return "The input file is empty; export your raw data again and retry"
	case errors.Is(err, parser.ErrUnsupportedFormat):
		return "Use --format to choose 23andme, csv or vcf"
	case errors.As(err, &serr):
		return "Use --sample or --sample-index to pick one of the samples in the VCF header"
	case errors.Is(err, fs.ErrNotExist):
		return "Check that the file path is correct"
	}
	return ""
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	logger  *zap.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   "geniusdna",
		Short: "Genetic variant wellness report generator",
		Long: `geniusdna reads raw genotype exports (23andMe, CSV or VCF), matches them
against a curated table of wellness-related SNPs and writes a report with
per-category risk scores and prioritized recommendations.

The report is informational and is not a medical diagnosis.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetString("log-level"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("geniusdna version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default ~/"+configName+".yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("reference", "", "Reference table exported with 'refdb export' (.json, .csv or DuckDB; default: built-in)")
	_ = a.v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("reference", cmd.PersistentFlags().Lookup("reference"))

	cmd.AddCommand(newAnalyzeCmd(a))
	cmd.AddCommand(newCompareCmd(a))
	cmd.AddCommand(newRefdbCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig reads the config file and GENIUSDNA_* environment variables.
// A missing config file is not an error.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("GENIUSDNA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds a console logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geniusdna version %s (%s) built %s\n", version, commit, date)
		},
	}
}
