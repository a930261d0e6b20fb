package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage geniusdna configuration",
		Long: `Show, get, or set configuration values. Config is stored in ~/.geniusdna.yaml.

Every analyze flag (format, sample, sample-index, output, workers) plus
log-level and reference can be set here or through GENIUSDNA_* environment
variables.`,
		Example: `  geniusdna config                     # show all config
  geniusdna config set output json     # default to JSON reports
  geniusdna config set workers 4       # interpret with four workers
  geniusdna config get output          # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd(a))
	cmd.AddCommand(newConfigGetCmd(a))

	return cmd
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

// fileConfig reads only the config file, without flag defaults or
// environment overrides. A missing file yields an empty config.
func (a *app) fileConfig() (*viper.Viper, string, error) {
	path := a.cfgFile
	if path == "" {
		path = a.v.ConfigFileUsed()
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, configName+".yaml")
	}

	fv := viper.New()
	fv.SetConfigFile(path)
	fv.SetConfigType("yaml")
	if err := fv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}
	return fv, path, nil
}

func (a *app) runConfigShow(out io.Writer) error {
	fv, path, err := a.fileConfig()
	if err != nil {
		return err
	}

	settings := fv.AllSettings()
	if len(settings) == 0 {
		fmt.Fprintf(out, "# No configuration set. Config file: %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

func (a *app) runConfigSet(out io.Writer, key, value string) error {
	fv, path, err := a.fileConfig()
	if err != nil {
		return err
	}

	// Parse boolean-like and integer values
	switch value {
	case "true", "yes", "on":
		fv.Set(key, true)
	case "false", "no", "off":
		fv.Set(key, false)
	default:
		if n, err := strconv.Atoi(value); err == nil {
			fv.Set(key, n)
		} else {
			fv.Set(key, value)
		}
	}

	if err := fv.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, path)
	return nil
}

// runConfigGet prints the effective value, including flag defaults and
// environment overrides.
func (a *app) runConfigGet(out io.Writer, key string) error {
	val := a.v.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(out, val)
	return nil
}
