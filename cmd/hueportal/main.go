package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/wheelibin/hueportal/internal/config"
	"github.com/wheelibin/hueportal/internal/constants"
	"github.com/wheelibin/hueportal/internal/hue"
	"github.com/wheelibin/hueportal/internal/logging"
)

// app holds what every command needs once config has been read.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	transport *hue.Transport
	portal    *hue.Portal
}

func (a *app) bridge() (*hue.Bridge, error) {
	if a.cfg.BridgeAddress == "" {
		return nil, fmt.Errorf("no bridge address configured, run discover and set bridgeAddress")
	}
	return a.portal.Bridge(a.cfg.BridgeAddress), nil
}

func (a *app) user() (*hue.User, error) {
	b, err := a.bridge()
	if err != nil {
		return nil, err
	}
	if a.cfg.Username == "" {
		return nil, fmt.Errorf("no username configured, run register and set username")
	}
	return b.User(a.cfg.Username), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	a := &app{}

	cmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Control lights through a bridge's HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.LogLevel, cfg.LogFile)
			a.transport = hue.NewTransport(a.logger, cfg.Timeout)
			a.portal = hue.NewPortal(a.logger, a.transport, cfg.DiscoveryURL)
			a.logger.Debug("hueportal starting", "bridge", cfg.BridgeAddress)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	cmd.AddCommand(
		discoverCmd(a),
		registerCmd(a),
		stateCmd(a),
		lightsCmd(a),
		lightCmd(a),
		lightStateCmd(a),
		sceneLightStateCmd(a),
		toggleCmd(a),
		colorCmd(a),
		allCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.AppName, constants.Version)
			},
		},
	)

	return cmd
}
