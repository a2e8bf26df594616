package cli

import (
	"github.com/spf13/cobra"

	"portview/internal/shared"
)

// The status-style commands are pure argument translation: resolve an
// alias argument to the canonical name, build the utility's command
// line, run it and pass the output through verbatim.

type wrapperOptions struct {
	scopeOptions
	Verbose bool
}

func newIntfutilCommand(name string, short string, column string) *cobra.Command {
	opts := wrapperOptions{}
	cmd := &cobra.Command{
		Use:   name + " [INTERFACE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"intfutil", "-c", column}
			iface := argInterface(args)
			if iface != "" {
				service := newAppService(cmd.Context())
				name, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				// The display option is ignored for a named interface.
				argv = append(argv, "-i", name)
			} else {
				argv = append(argv, "-d", displayOrDefault(opts.Display))
			}
			if opts.Namespace != "" {
				argv = append(argv, "-n", opts.Namespace)
			}
			return shared.RunDisplay(argv, opts.Verbose)
		},
	}
	addScopeFlags(cmd, &opts.scopeOptions)
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return newIntfutilCommand("status", "Show interface status information", "status")
}

func newDescriptionCommand() *cobra.Command {
	return newIntfutilCommand("description", "Show interface status, protocol and description", "description")
}

func newTpidCommand() *cobra.Command {
	return newIntfutilCommand("tpid", "Show interface TPID information", "tpid")
}

func newAutonegCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoneg",
		Short: "Show interface autoneg information",
	}
	cmd.AddCommand(newIntfutilCommand("status", "Show interface autoneg status", "autoneg"))
	return cmd
}

func newLinkTrainingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link-training",
		Short: "Show interface link-training information",
	}
	cmd.AddCommand(newIntfutilCommand("status", "Show interface link-training status", "link_training"))
	return cmd
}

func newFecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fec",
		Short: "Show interface FEC information",
	}
	cmd.AddCommand(newIntfutilCommand("status", "Show interface FEC status", "fec"))
	return cmd
}

func newCountersCommand() *cobra.Command {
	opts := wrapperOptions{}
	printall := false
	period := ""
	iface := ""
	cmd := &cobra.Command{
		Use:   "counters",
		Short: "Show interface counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			argv := []string{"portstat"}
			if printall {
				argv = append(argv, "-a")
			}
			if period != "" {
				argv = append(argv, "-p", period)
			}
			if iface != "" {
				service := newAppService(cmd.Context())
				name, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				argv = append(argv, "-i", name)
			} else {
				argv = append(argv, "-s", displayOrDefault(opts.Display))
			}
			if opts.Namespace != "" {
				argv = append(argv, "-n", opts.Namespace)
			}
			return shared.RunDisplay(argv, opts.Verbose)
		},
	}
	addScopeFlags(cmd, &opts.scopeOptions)
	cmd.Flags().BoolVarP(&printall, "printall", "a", false, "Print all counters")
	cmd.Flags().StringVarP(&period, "period", "p", "", "Display statistics over a specified period (in seconds)")
	cmd.Flags().StringVarP(&iface, "interface", "i", "", "Display counters for one interface")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	cmd.AddCommand(newPortstatCommand("errors", "Show interface counters errors", "-e"))
	cmd.AddCommand(newPortstatCommand("fec-stats", "Show interface counters fec-stats", "-f"))
	cmd.AddCommand(newPortstatCommand("rates", "Show interface counters rates", "-R"))
	cmd.AddCommand(newRifCountersCommand())
	cmd.AddCommand(newDetailedCountersCommand())
	return cmd
}

func newPortstatCommand(name string, short string, flag string) *cobra.Command {
	opts := wrapperOptions{}
	period := ""
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			argv := []string{"portstat", flag}
			if period != "" {
				argv = append(argv, "-p", period)
			}
			argv = append(argv, "-s", displayOrDefault(opts.Display))
			if opts.Namespace != "" {
				argv = append(argv, "-n", opts.Namespace)
			}
			return shared.RunDisplay(argv, opts.Verbose)
		},
	}
	addScopeFlags(cmd, &opts.scopeOptions)
	cmd.Flags().StringVarP(&period, "period", "p", "", "Display statistics over a specified period (in seconds)")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newRifCountersCommand() *cobra.Command {
	period := ""
	verbose := false
	cmd := &cobra.Command{
		Use:   "rif [INTERFACE]",
		Short: "Show interface counters for router interfaces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"intfstat"}
			if period != "" {
				argv = append(argv, "-p", period)
			}
			if iface := argInterface(args); iface != "" {
				service := newAppService(cmd.Context())
				name, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				argv = append(argv, "-i", name)
			}
			return shared.RunDisplay(argv, verbose)
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "", "Display statistics over a specified period (in seconds)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newDetailedCountersCommand() *cobra.Command {
	period := ""
	verbose := false
	cmd := &cobra.Command{
		Use:   "detailed INTERFACE",
		Short: "Show interface counters detailed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"portstat", "-l"}
			if period != "" {
				argv = append(argv, "-p", period)
			}
			service := newAppService(cmd.Context())
			name, err := service.ResolveInterfaceName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			argv = append(argv, "-i", name)
			return shared.RunDisplay(argv, verbose)
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "", "Display statistics over a specified period (in seconds)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newTransceiverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transceiver",
		Short: "Show SFP transceiver information",
	}
	cmd.AddCommand(newSfpshowCommand("eeprom", "Show interface transceiver EEPROM information", true))
	cmd.AddCommand(newSfpshowCommand("presence", "Show interface transceiver presence", false))
	cmd.AddCommand(newSfpshowCommand("pm", "Show interface transceiver performance monitoring information", false))
	cmd.AddCommand(newSfpshowCommand("status", "Show interface transceiver status information", false))
	cmd.AddCommand(newSfpshowCommand("info", "Show interface transceiver information", false))
	cmd.AddCommand(newLpmodeCommand())
	cmd.AddCommand(newTransceiverErrorStatusCommand())
	return cmd
}

func newLpmodeCommand() *cobra.Command {
	verbose := false
	cmd := &cobra.Command{
		Use:   "lpmode [INTERFACE]",
		Short: "Show interface transceiver low-power mode status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"sudo", "sfputil", "show", "lpmode"}
			if iface := argInterface(args); iface != "" {
				service := newAppService(cmd.Context())
				name, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				argv = append(argv, "-p", name)
			}
			return shared.RunDisplay(argv, verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newTransceiverErrorStatusCommand() *cobra.Command {
	opts := wrapperOptions{}
	fromHardware := false
	cmd := &cobra.Command{
		Use:   "error-status [INTERFACE]",
		Short: "Show transceiver error-status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"sudo", "sfputil", "show", "error-status"}
			if iface := argInterface(args); iface != "" {
				service := newAppService(cmd.Context())
				name, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				argv = append(argv, "-p", name)
			}
			if fromHardware {
				argv = append(argv, "-hw")
			}
			if opts.Namespace != "" {
				argv = append(argv, "-n", opts.Namespace)
			}
			return shared.RunDisplay(argv, opts.Verbose)
		},
	}
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace name or all")
	cmd.Flags().BoolVarP(&fromHardware, "fetch-from-hardware", "w", false, "Fetch error status from the transceiver hardware")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newSfpshowCommand(name string, short string, domOption bool) *cobra.Command {
	opts := wrapperOptions{}
	dumpDOM := false
	cmd := &cobra.Command{
		Use:   name + " [INTERFACE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{"sfpshow", name}
			if dumpDOM {
				argv = append(argv, "--dom")
			}
			if iface := argInterface(args); iface != "" {
				service := newAppService(cmd.Context())
				resolved, err := service.ResolveInterfaceName(cmd.Context(), iface)
				if err != nil {
					return err
				}
				argv = append(argv, "-p", resolved)
			}
			if opts.Namespace != "" {
				argv = append(argv, "-n", opts.Namespace)
			}
			return shared.RunDisplay(argv, opts.Verbose)
		},
	}
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace name or all")
	if domOption {
		cmd.Flags().BoolVarP(&dumpDOM, "dom", "d", false, "Also display Digital Optical Monitoring (DOM) data")
	}
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func displayOrDefault(display string) string {
	if display == "" {
		return "frontend"
	}
	return display
}
