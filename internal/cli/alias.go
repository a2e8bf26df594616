package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portview/internal/app"
	"portview/internal/core"
)

func newAliasCommand() *cobra.Command {
	opts := scopeOptions{}
	cmd := &cobra.Command{
		Use:   "alias [INTERFACE]",
		Short: "Show interface name/alias mapping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd.Context())
			result, err := service.Alias(cmd.Context(), app.AliasRequest{
				Interface: argInterface(args),
				Namespace: opts.Namespace,
				Display:   opts.Display,
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				rows = append(rows, []string{row.Name, row.Alias})
			}
			renderTable(cmd.OutOrStdout(), []string{"Name", "Alias"}, rows)
			return nil
		},
	}
	addScopeFlags(cmd, &opts)
	return cmd
}

func newNamingModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "naming-mode",
		Short: "Show interface naming mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := core.ResolveNamingMode(viper.GetString("interface_mode"))
			fmt.Fprintln(cmd.OutOrStdout(), string(mode))
			return nil
		},
	}
}
