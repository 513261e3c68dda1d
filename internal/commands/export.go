package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/export"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the account book as CSV",
	}

	cmd.AddCommand(newExportKindCommand("accounts", "Export one row per active account"))
	cmd.AddCommand(newExportKindCommand("transactions", "Export one row per transaction"))

	return cmd
}

func newExportKindCommand(kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			var sharer export.Sharer
			if e.cfg.Export.ShareCommand != "" {
				sharer = export.ExecSharer{Command: e.cfg.Export.ShareCommand}
			}
			pipeline := export.New(e.book, sharer, e.cfg.Export.Dir, e.logger)

			var res export.Result
			switch kind {
			case "accounts":
				res = pipeline.Accounts(cmdContext())
			default:
				res = pipeline.Transactions(cmdContext())
			}

			if !res.Success {
				fmt.Printf("Export failed: %v\n", res.Err)
				return nil
			}

			fmt.Printf("Exported to %s\n", res.FilePath)
			if !res.Shared {
				fmt.Println("Share unavailable; preview:")
				fmt.Println(strings.Join(res.Preview, "\n"))
				fmt.Printf("Retry sharing with: pocketbook export %s\n", kind)
			}
			return nil
		},
	}
}
