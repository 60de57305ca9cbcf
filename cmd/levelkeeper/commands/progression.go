package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInsufficientFunds = errors.New("insufficient funds")

func experienceCmds() []*cobra.Command {
	return []*cobra.Command{
		memberAmountCmd("add-xp", "Add experience, creating the member if needed",
			func(id string, n int) error { return appCtx.Progression.AddExperience(id, n) }),
		memberAmountCmd("reduce-xp", "Remove experience, possibly dropping a level",
			func(id string, n int) error { return appCtx.Progression.ReduceExperience(id, n) }),
		memberAmountCmd("set-xp", "Overwrite a member's experience",
			func(id string, n int) error { return appCtx.Progression.SetExperience(id, n) }),
	}
}

func levelCmds() []*cobra.Command {
	return []*cobra.Command{
		memberAmountCmd("add-level", "Raise a member's level",
			func(id string, n int) error { return appCtx.Progression.AddLevel(id, n) }),
		memberAmountCmd("reduce-level", "Lower a member's level",
			func(id string, n int) error { return appCtx.Progression.ReduceLevel(id, n) }),
		memberAmountCmd("set-level", "Overwrite a member's level",
			func(id string, n int) error { return appCtx.Progression.SetLevel(id, n) }),
	}
}

func currencyCmds() []*cobra.Command {
	return []*cobra.Command{
		memberAmountCmd("add-currency", "Credit currency to a member",
			func(id string, n int) error { return appCtx.Progression.AddCurrency(id, n) }),
		memberAmountCmd("set-currency", "Overwrite a member's currency",
			func(id string, n int) error { return appCtx.Progression.SetCurrency(id, n) }),
		spendCmd(),
	}
}

// spend exits non-zero when the balance is too low.
func spendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend <id> <n>",
		Short: "Debit currency if the member can afford it",
		Long:  "Debit currency if the member can afford it.\n\n" + amountHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			n, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			ok, err := appCtx.Progression.SpendCurrency(id, n)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("spend %d from %s: %w", n, id, errInsufficientFunds)
			}
			printMember(cmd, id)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
