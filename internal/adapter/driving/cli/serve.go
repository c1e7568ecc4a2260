package cli

import (
	"github.com/spf13/cobra"

	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

func (app *CLIApp) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo invoice API from a dataset file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataFile, _ := cmd.Flags().GetString("data")
			addr, _ := cmd.Flags().GetString("addr")
			dev, _ := cmd.Flags().GetBool("dev")

			if dataFile == "" {
				return types.ErrEmptyDatasetSource
			}

			return app.serve(cmd.Context(), &types.ServeArgs{
				DataFile: dataFile,
				Addr:     addr,
				Dev:      dev,
			})
		},
	}

	cmd.Flags().StringP("data", "f", "", "Path to a TOML, YAML, or JSON dataset file")
	cmd.Flags().String("addr", ":3000", "Address to listen on")
	cmd.Flags().Bool("dev", false, "Use human-readable development logging")

	return cmd
}
