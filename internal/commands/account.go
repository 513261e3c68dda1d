package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/currency"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect and manage a single account",
	}

	cmd.AddCommand(newAccountShowCommand())
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountEditCommand())
	cmd.AddCommand(newAccountRmCommand())

	return cmd
}

func newAccountShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account and its transactions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			account, txns, err := e.book.AccountByID(cmdContext(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s — %s (%s, %s)\n", account.Nickname, account.BankName, account.Type, account.AccountNumber)
			fmt.Printf("Balance: %s\n\n", currency.Format(account.Balance, string(account.Currency)))
			for _, t := range txns {
				sign := "+"
				if t.Type == model.TransactionDebit {
					sign = "-"
				}
				label := t.Description
				if t.Category != "" {
					label += " [" + t.Category + "]"
				}
				fmt.Printf("%s  %s%s  %s\n", t.Date.Format("2006-01-02"), sign,
					currency.Format(t.Amount, string(account.Currency)), label)
			}
			return nil
		},
	}
}

func newAccountAddCommand() *cobra.Command {
	var (
		nickname string
		bank     string
		number   string
		acctType string
		balance  string
		curCode  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if curCode == "" {
				curCode = e.cfg.Defaults.Currency
			}
			bal := decimal.Zero
			if balance != "" {
				bal, err = decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parsing balance %q: %w", balance, err)
				}
			}

			account, err := e.book.CreateAccount(cmdContext(), store.CreateAccountParams{
				Nickname:      nickname,
				BankName:      bank,
				AccountNumber: number,
				Type:          model.AccountType(acctType),
				Balance:       bal,
				Currency:      model.Currency(curCode),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created account %s (%s)\n", account.ID, account.Nickname)
			return nil
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "account nickname (required)")
	_ = cmd.MarkFlagRequired("nickname")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().StringVar(&number, "number", "", "masked account number")
	cmd.Flags().StringVar(&acctType, "type", string(model.AccountTypeSavings), "account type (savings|salary|current|other)")
	cmd.Flags().StringVar(&balance, "balance", "", "opening balance")
	cmd.Flags().StringVar(&curCode, "currency", "", "currency code (defaults from config)")

	return cmd
}

func newAccountEditCommand() *cobra.Command {
	var (
		nickname string
		bank     string
		number   string
		acctType string
		balance  string
		curCode  string
	)

	cmd := &cobra.Command{
		Use:   "edit <account-id>",
		Short: "Update account fields; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			var params store.UpdateAccountParams
			if cmd.Flags().Changed("nickname") {
				params.Nickname = &nickname
			}
			if cmd.Flags().Changed("bank") {
				params.BankName = &bank
			}
			if cmd.Flags().Changed("number") {
				params.AccountNumber = &number
			}
			if cmd.Flags().Changed("type") {
				t := model.AccountType(acctType)
				params.Type = &t
			}
			if cmd.Flags().Changed("balance") {
				bal, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parsing balance %q: %w", balance, err)
				}
				params.Balance = &bal
			}
			if cmd.Flags().Changed("currency") {
				c := model.Currency(curCode)
				params.Currency = &c
			}

			account, err := e.book.UpdateAccount(cmdContext(), args[0], params)
			if err != nil {
				return err
			}

			fmt.Printf("Updated account %s (%s)\n", account.ID, account.Nickname)
			return nil
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "account nickname")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().StringVar(&number, "number", "", "masked account number")
	cmd.Flags().StringVar(&acctType, "type", "", "account type")
	cmd.Flags().StringVar(&balance, "balance", "", "balance")
	cmd.Flags().StringVar(&curCode, "currency", "", "currency code")

	return cmd
}

func newAccountRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <account-id>",
		Short: "Soft-delete an account; its transactions are retained",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.book.DeleteAccount(cmdContext(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted account %s\n", args[0])
			return nil
		},
	}
}
