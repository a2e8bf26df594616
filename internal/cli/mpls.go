package cli

import (
	"github.com/spf13/cobra"

	"portview/internal/app"
)

func newMPLSCommand() *cobra.Command {
	opts := scopeOptions{}
	cmd := &cobra.Command{
		Use:   "mpls [INTERFACE]",
		Short: "Show interface MPLS status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd.Context())
			result, err := service.MPLS(cmd.Context(), app.MPLSRequest{
				Interface: argInterface(args),
				Namespace: opts.Namespace,
				Display:   opts.Display,
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				rows = append(rows, []string{row.Port, row.State})
			}
			renderTable(cmd.OutOrStdout(), []string{"Interface", "MPLS State"}, rows)
			return nil
		},
	}
	addScopeFlags(cmd, &opts)
	return cmd
}
