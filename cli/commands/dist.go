package commands

import (
	"fmt"

	"github.com/robgonnella/bumpver/internal/command"
	"github.com/robgonnella/bumpver/internal/config"
	distpkg "github.com/robgonnella/bumpver/internal/dist"
	"github.com/spf13/cobra"
)

// creates and returns the "dist" command
func dist(opts *config.RunOptions) *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Create a release archive of HEAD at the current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New(opts.SrcDir)

			if err != nil {
				return err
			}

			runner := command.NewExecRunner(opts.SrcDir)

			packager := distpkg.NewPackager(runner, conf, *opts)

			artifact, err := packager.Archive(cmd.Context(), compression)

			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", artifact)

			return nil
		},
	}

	cmd.Flags().StringVarP(&compression, "compression", "c", "", "Compress the archive (gzip, bzip2 or xz)")

	return cmd
}
