// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/config"
)

// newConfigCommand creates the `codebit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage codebit configuration",
		Long: `Manage codebit configuration.

Configuration is stored in:
  - Linux: ~/.config/codebit/config.cue
  - macOS: ~/Library/Application Support/codebit/config.cue
  - Windows: %APPDATA%\codebit\config.cue

Every key can be overridden from the environment, e.g. CODEBIT_UI_VERBOSE=true.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, dir)
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to create config.cue in (default: the user config directory)")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	data, err := toml.Marshal(app.cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", sourceLabel(app.cfg.Source))
	_, err = out.Write(data)
	return err
}

func initConfig(cmd *cobra.Command, dir string) error {
	path, err := config.CreateDefaultConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration at %s\n", successIcon, HighlightStyle.Render(path))
	return nil
}

func showConfigPath(cmd *cobra.Command) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
