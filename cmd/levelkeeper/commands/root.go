package commands

import (
	"github.com/spf13/cobra"

	"levelkeeper/internal/app"
)

var (
	dataFile   string
	passphrase string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "levelkeeper",
		Short:         "Track member levels, experience and currency",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&dataFile, "data", "", "member data file (default $DATA_FILE_PATH or ./data/memberData.json)")

	root.AddCommand(
		showCmd(),
		listCmd(),
		thresholdCmd(),
		flushCmd(),
	)
	root.AddCommand(experienceCmds()...)
	root.AddCommand(levelCmds()...)
	root.AddCommand(currencyCmds()...)
	root.AddCommand(exportCmd(), importCmd(), serveCmd())
	return root
}
