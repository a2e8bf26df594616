package cli

import "github.com/spf13/cobra"

// scopeOptions are the namespace/display selectors shared by the
// multi-namespace commands.
type scopeOptions struct {
	Namespace string
	Display   string
}

func addScopeFlags(cmd *cobra.Command, opts *scopeOptions) {
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace name or all")
	cmd.Flags().StringVarP(&opts.Display, "display", "d", "", "all|frontend")
}

func argInterface(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}
