package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data; the next command re-seeds the sample book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe the vault without --yes")
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.book.ClearAll(cmdContext()); err != nil {
				return err
			}
			fmt.Println("Vault cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")

	return cmd
}
