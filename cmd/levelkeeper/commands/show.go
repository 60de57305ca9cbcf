package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"levelkeeper/internal/services/progression"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a member's level, experience and currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printMember(cmd, args[0])
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every tracked member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := appCtx.Progression.Snapshot()
			ids := make([]string, 0, len(table))
			for id := range table {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLEVEL\tEXPERIENCE\tCURRENCY")
			for _, id := range ids {
				m := table[id]
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", id, m.Level, m.Experience, m.Currency)
			}
			return tw.Flush()
		},
	}
}

func thresholdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threshold <level>",
		Short: "Print the experience needed to leave a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			if level < progression.MinLevel || level > progression.MaxLevel {
				return fmt.Errorf("level must be between %d and %d", progression.MinLevel, progression.MaxLevel)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "level %d needs %d experience\n", level, progression.Threshold(level))
			return nil
		},
	}
}

func flushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Rewrite the member document from the loaded table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Progression.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", appCtx.Document.Path())
			return nil
		},
	}
}
