package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

const txDateFormat = "2006-01-02"

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Work with transactions",
	}

	cmd.AddCommand(newTxAddCommand())

	return cmd
}

func newTxAddCommand() *cobra.Command {
	var (
		desc     string
		amount   string
		txType   string
		date     string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add <account-id>",
		Short: "Post a transaction against an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			if !amt.IsPositive() {
				return fmt.Errorf("amount must be positive, got %s", amt)
			}

			kind := model.TransactionCredit
			if txType == string(model.TransactionDebit) {
				kind = model.TransactionDebit
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse(txDateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			txn, err := e.book.AddTransaction(cmdContext(), args[0], store.TransactionDraft{
				Description: desc,
				Amount:      amt,
				Type:        kind,
				Date:        when,
				Category:    category,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Posted %s %s (%s)\n", txn.Type, txn.Amount, txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&txType, "type", string(model.TransactionCredit), "CREDIT or DEBIT")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&category, "category", "", "optional category")

	return cmd
}
