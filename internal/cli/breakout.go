package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portview/internal/app"
)

func newBreakoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakout",
		Short: "Show breakout mode information by interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd.Context())
			result, err := service.Breakout(cmd.Context())
			if err != nil {
				return err
			}
			if result.TableMissing {
				fmt.Fprintln(cmd.OutOrStdout(), "Breakout table is not present in the config store")
				return nil
			}
			return renderBreakoutJSON(cmd.OutOrStdout(), result.Configs)
		},
	}
	cmd.AddCommand(newBreakoutCurrentModeCommand())
	return cmd
}

func newBreakoutCurrentModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current-mode [INTERFACE]",
		Short: "Show current breakout mode by interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd.Context())
			result, err := service.CurrentMode(cmd.Context(), app.CurrentModeRequest{
				Interface: argInterface(args),
			})
			if err != nil {
				return err
			}
			if result.TableMissing {
				fmt.Fprintln(cmd.OutOrStdout(), "Breakout table is not present in the config store")
				return nil
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				rows = append(rows, []string{row.Port, row.Mode})
			}
			renderGrid(cmd.OutOrStdout(), []string{"Interface", "Current Breakout Mode"}, rows)
			return nil
		},
	}
}
