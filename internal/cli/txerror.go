package cli

import (
	"github.com/spf13/cobra"

	"portview/internal/app"
)

func newTxErrorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tx-error INTERFACE",
		Short: "Show interface transmit error information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd.Context())
			result, err := service.TxError(cmd.Context(), app.TxErrorRequest{Interface: args[0]})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				rows = append(rows, []string{row.Port, row.Status, row.Statistics})
			}
			renderTable(cmd.OutOrStdout(), []string{"Port", "Status", "Statistics"}, rows)
			return nil
		},
	}
}
