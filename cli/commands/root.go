package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/bumpver/internal/command"
	"github.com/robgonnella/bumpver/internal/config"
	"github.com/robgonnella/bumpver/internal/core"
	"github.com/robgonnella/bumpver/internal/history"
	"github.com/robgonnella/bumpver/internal/logger"
	"github.com/robgonnella/bumpver/internal/vcs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// commitHeader is the fixed prefix of every bump commit message
const commitHeader = "version bump:"

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Ledger history.Service
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var logToFile bool
	var listFiles bool

	opts := config.RunOptions{}

	cmd := &cobra.Command{
		Use:   "bumpver [flags] (pbump | + | mbump | ++ | Mbump | setver VERSION | VERSION)",
		Short: "Bumps the project version and rewrites it into declared files",
		Args:  cobra.MaximumNArgs(2),
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if logToFile {
				logFile, ok := viper.Get("log-file").(string)

				if !ok || logFile == "" {
					return errors.New("failed to find log file path config")
				}

				f, err := os.OpenFile(
					logFile,
					os.O_APPEND|os.O_CREATE|os.O_WRONLY,
					0644,
				)

				if err != nil {
					return err
				}

				logger.GlobalSetOutput(f)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New(opts.SrcDir)

			if err != nil {
				return err
			}

			if err := conf.Validate(); err != nil {
				return err
			}

			if listFiles {
				fmt.Println(conf.VersionFile)

				for _, target := range conf.Targets {
					fmt.Println(target.Path)
				}

				return nil
			}

			// distinguish an explicitly empty suffix from no override
			opts.SuffixSet = cmd.Flags().Changed("suffix")

			action, err := parseAction(args)

			if err != nil {
				return err
			}

			runner := command.NewExecRunner(opts.SrcDir)

			appCore := core.New(
				conf,
				opts.Normalize(),
				vcs.NewGit(runner),
				vcs.DefaultNamer{Header: commitHeader},
				props.Ledger,
			)

			result, err := appCore.Run(cmd.Context(), action)

			if err != nil {
				return err
			}

			if result.NewVersion == "" {
				// reset-only run
				return nil
			}

			if opts.DryRun {
				fmt.Println("dry run complete - no files were modified")
			}

			fmt.Printf("old version: %s\n", result.OldVersion)
			fmt.Printf("new version: %s\n", result.NewVersion)

			for _, file := range result.UpdatedFiles {
				fmt.Printf("  %s\n", file)
			}

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "Disables all logging")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Write logs to the run-time log file instead of stderr")
	cmd.PersistentFlags().StringVar(&opts.SrcDir, "src", ".", "Project source directory")
	cmd.PersistentFlags().BoolVarP(&opts.DryRun, "pretend", "p", false, "Report every action without executing anything")

	cmd.Flags().StringVarP(&opts.Suffix, "suffix", "s", "", "Override the version suffix (empty clears it)")
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "Check the version file out from HEAD first")
	cmd.Flags().BoolVar(&opts.Stage, "git-add", false, "Stage edited files")
	cmd.Flags().BoolVar(&opts.Commit, "git-commit", false, "Commit staged files (implies --git-add)")
	cmd.Flags().BoolVar(&opts.ForceCommit, "force-commit", false, "Commit even with unrelated working tree changes")
	cmd.Flags().BoolVar(&opts.Tag, "git-tag", false, "Tag the commit with the new version (implies --git-commit)")
	cmd.Flags().BoolVarP(&listFiles, "list-files", "l", false, "Print the configured file list and exit")

	cmd.AddCommand(version())
	cmd.AddCommand(historyCmd(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(dist(&opts))

	return cmd
}
