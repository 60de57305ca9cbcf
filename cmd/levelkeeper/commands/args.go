package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"levelkeeper/internal/domain"
)

func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return n, nil
}

const amountHelp = `<n> may be negative. Flags go before <id>; everything after
<id> is taken as an argument, so "-5" reaches the command as an amount.`

// memberAmountCmd builds a "<use> <id> <n>" command that applies fn and
// prints the resulting record.
func memberAmountCmd(use, short string, fn func(id string, n int) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id> <n>",
		Short: short,
		Long:  short + ".\n\n" + amountHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			n, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if err := fn(id, n); err != nil {
				return err
			}
			printMember(cmd, id)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func printMember(cmd *cobra.Command, id string) {
	m, ok := appCtx.Progression.Lookup(id)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not tracked\n", id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s level=%d experience=%d currency=%d\n",
		id, m.Level, m.Experience, m.Currency)
}
