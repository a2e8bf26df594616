package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portview/internal/app"
)

func newNeighborCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbor",
		Short: "Show neighbor related information",
	}
	cmd.AddCommand(newNeighborExpectedCommand())
	return cmd
}

func newNeighborExpectedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expected [INTERFACE]",
		Short: "Show expected neighbor information by interfaces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iface := argInterface(args)
			service := newAppService(cmd.Context())
			result, err := service.NeighborExpected(cmd.Context(), app.NeighborRequest{Interface: iface})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case result.NeighborsMissing:
				fmt.Fprintln(out, "DEVICE_NEIGHBOR information is not present.")
				return nil
			case result.MetadataMissing:
				fmt.Fprintln(out, "DEVICE_NEIGHBOR_METADATA information is not present.")
				return nil
			case result.NotFound:
				fmt.Fprintf(out, "No neighbor information available for interface %s\n", iface)
				return nil
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				rows = append(rows, []string{
					row.LocalPort, row.Device, row.RemotePort,
					row.Loopback, row.Mgmt, row.NeighborType,
				})
			}
			header := []string{"LocalPort", "Neighbor", "NeighborPort", "NeighborLoopback", "NeighborMgmt", "NeighborType"}
			renderTable(out, header, rows)
			return nil
		},
	}
}
