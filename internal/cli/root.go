package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portview/internal/adapters"
	"portview/internal/app"
	"portview/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PORTVIEW"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "portview",
		Short:         "Show details of the network interfaces",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newAliasCommand())
	cmd.AddCommand(newNamingModeCommand())
	cmd.AddCommand(newMPLSCommand())
	cmd.AddCommand(newBreakoutCommand())
	cmd.AddCommand(newNeighborCommand())
	cmd.AddCommand(newTxErrorCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newDescriptionCommand())
	cmd.AddCommand(newTpidCommand())
	cmd.AddCommand(newCountersCommand())
	cmd.AddCommand(newTransceiverCommand())
	cmd.AddCommand(newAutonegCommand())
	cmd.AddCommand(newLinkTrainingCommand())
	cmd.AddCommand(newFecCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("interface_mode", "native")
	viper.SetDefault("store_addr", "localhost:6379")
	viper.SetDefault("platform_file", "/usr/share/portview/platform.json")
	viper.SetDefault("hwsku_file", "/usr/share/portview/hwsku.json")
	viper.SetDefault("topology_file", "/etc/portview/topology.yaml")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("portview")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/portview")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService(ctx context.Context) app.Service {
	platformFile := viper.GetString("platform_file")
	skuFile := viper.GetString("hwsku_file")
	assert.NotEmpty(ctx, platformFile, "platform capability document path must be set")
	assert.NotEmpty(ctx, skuFile, "SKU capability document path must be set")

	stores := adapters.NewRedisProvider(
		viper.GetString("store_addr"),
		viper.GetStringMapString("store_addrs"),
	)
	return app.NewService(
		stores,
		adapters.NewCapabilityFileAdapter(platformFile, skuFile),
		adapters.NewTopologyFileAdapter(viper.GetString("topology_file")),
		core.ResolveNamingMode(viper.GetString("interface_mode")),
	)
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeInternal:
		// Store connectivity; fatal for the whole operation.
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
