package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/statement"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

func newImportCommand() *cobra.Command {
	var accountOverride string

	cmd := &cobra.Command{
		Use:   "import <file.csv>...",
		Short: "Import bank statement CSVs as transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			parser := statement.NewParser(e.logger)
			res := parser.ParseStatementFiles(args)
			if !res.Success {
				// Parse failures are user-displayable, not fatal.
				fmt.Printf("Import failed: %v\n", res.Err)
				return nil
			}

			ctx := cmdContext()
			imported, failed := 0, 0
			for _, staged := range res.Transactions {
				target := staged.AccountID
				if accountOverride != "" {
					target = accountOverride
				}

				_, err := e.book.AddTransaction(ctx, target, store.TransactionDraft{
					Description: staged.Description,
					Amount:      staged.Amount,
					Type:        staged.Type,
					Date:        staged.Date,
					Category:    staged.Category,
				})
				if err != nil {
					failed++
					e.logger.Warn("skipping staged transaction",
						zap.String("account", target),
						zap.String("description", staged.Description),
						zap.Error(err))
					continue
				}
				imported++
			}

			fmt.Printf("Imported %d transactions", imported)
			if failed > 0 {
				fmt.Printf(", %d failed", failed)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&accountOverride, "account", "", "post every row to this account id instead of the accountId column")

	return cmd
}
