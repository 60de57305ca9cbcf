package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"levelkeeper/internal/store"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a passphrase sealed backup of the member table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			table := appCtx.Progression.Snapshot()
			if err := store.WriteSnapshot(args[0], passphrase, table); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d members to %s\n", len(table), args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the backup")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the member table from a sealed backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			table, err := store.ReadSnapshot(args[0], passphrase)
			if err != nil {
				return err
			}
			if err := appCtx.Progression.Replace(table); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d members into %s\n", len(table), appCtx.Document.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase the backup was sealed with")
	return cmd
}
