package commands

import (
	"errors"
	"fmt"

	"github.com/robgonnella/bumpver/internal/exception"
	"github.com/spf13/cobra"
)

// creates and returns the "history" command
func historyCmd(props *CommandProps) *cobra.Command {
	var last bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded version bumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if last {
				record, err := props.Ledger.Latest()

				if errors.Is(err, exception.ErrRecordNotFound) {
					fmt.Println("no bumps recorded")
					return nil
				}

				if err != nil {
					return err
				}

				fmt.Printf(
					"%s  %s  %s -> %s  (%s)\n",
					record.CreatedAt.Format("2006-01-02 15:04"),
					record.Project,
					record.OldVersion,
					record.NewVersion,
					record.Action,
				)

				return nil
			}

			records, err := props.Ledger.Recorded()

			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("no bumps recorded")
				return nil
			}

			for _, record := range records {
				line := fmt.Sprintf(
					"%s  %s  %s -> %s  (%s)",
					record.CreatedAt.Format("2006-01-02 15:04"),
					record.Project,
					record.OldVersion,
					record.NewVersion,
					record.Action,
				)

				if record.Tagged {
					line = line + " tagged"
				}

				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Only print the most recent bump")

	return cmd
}
