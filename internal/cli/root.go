// Package cli provides the nox command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is the nox release reported by --version.
var Version = "0.1.0"

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the nox command with its flags bound to a fresh
// Config.
func NewRootCommand() *cobra.Command {
	config := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "nox [flags] [paths...]",
		Short: "Extract documentation from /** */ comments",
		Long: `nox reads source files, finds the /** ... */ comment blocks that
precede code and prints the description, code and @tags of every block
as JSON or YAML.

Paths may be files or directories; directories are searched recursively.`,
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				config.Paths = args
			}
			changed := func(name string) bool {
				if name == "paths" {
					return len(args) > 0
				}
				return cmd.Flags().Changed(name)
			}
			if err := loadConfigFile(&config, changed); err != nil {
				return err
			}
			return Run(cmd.Context(), &config, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.Output, "output", "o", config.Output, "Path to output file or '-' for stdout")
	flags.StringVarP(&config.Format, "format", "f", config.Format, "Output format: json or yaml")
	flags.StringSliceVarP(&config.Extensions, "ext", "e", config.Extensions, "File extensions to include when walking directories")
	flags.StringSliceVar(&config.ExcludeDirs, "exclude", config.ExcludeDirs, "Directory names to skip when walking directories")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn or error")
	flags.IntVar(&config.Concurrency, "concurrency", config.Concurrency, "Maximum files read at once (0 uses GOMAXPROCS)")
	flags.StringVarP(&config.ConfigPath, "config", "c", config.ConfigPath, "Path to options file")

	return cmd
}
