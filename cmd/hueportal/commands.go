package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wheelibin/hueportal/internal/config"
	"github.com/wheelibin/hueportal/internal/fixtures"
	"github.com/wheelibin/hueportal/internal/hue"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// userCmd builds a command that runs one request as the configured user and
// prints the bridge's response.
func userCmd(a *app, use, short string, nargs int, call func(ctx context.Context, u *hue.User, args []string) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.user()
			if err != nil {
				return err
			}
			raw, err := call(cmd.Context(), u, args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func discoverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Find bridges via the discovery portal and mDNS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bridges, err := hue.Discover(cmd.Context(), a.logger, a.portal, a.cfg.DiscoveryTimeout)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), bridges)
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register [devicetype]",
		Short: "Create a user on the bridge (press the link button first)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bridge()
			if err != nil {
				return err
			}
			deviceType := a.cfg.DeviceType
			if len(args) == 1 {
				deviceType = args[0]
			}
			raw, err := b.CreateUser(cmd.Context(), deviceType)
			if err != nil {
				return err
			}
			if err := hue.CheckResponse(raw); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func stateCmd(a *app) *cobra.Command {
	return userCmd(a, "state", "Print the bridge's full state", 0,
		func(ctx context.Context, u *hue.User, _ []string) (json.RawMessage, error) {
			return u.GetFullState(ctx)
		})
}

func lightsCmd(a *app) *cobra.Command {
	return userCmd(a, "lights", "List lights", 0,
		func(ctx context.Context, u *hue.User, _ []string) (json.RawMessage, error) {
			return u.GetLights(ctx)
		})
}

func lightCmd(a *app) *cobra.Command {
	return userCmd(a, "light <id>", "Show a light", 1,
		func(ctx context.Context, u *hue.User, args []string) (json.RawMessage, error) {
			return u.GetLight(ctx, args[0])
		})
}

// stateFlags collects the light state attributes that were set on the command line.
type stateFlags struct {
	on, off       bool
	bri, hue, sat int
}

func (s *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.on, "on", false, "Switch on")
	cmd.Flags().BoolVar(&s.off, "off", false, "Switch off")
	cmd.Flags().IntVar(&s.bri, "bri", 0, "Brightness (1-254)")
	cmd.Flags().IntVar(&s.hue, "hue", 0, "Hue (0-65535)")
	cmd.Flags().IntVar(&s.sat, "sat", 0, "Saturation (0-254)")
	cmd.MarkFlagsMutuallyExclusive("on", "off")
}

func (s *stateFlags) state(cmd *cobra.Command) (map[string]any, error) {
	state := map[string]any{}
	if s.on || s.off {
		state["on"] = s.on
	}
	if cmd.Flags().Changed("bri") {
		state["bri"] = s.bri
	}
	if cmd.Flags().Changed("hue") {
		state["hue"] = s.hue
	}
	if cmd.Flags().Changed("sat") {
		state["sat"] = s.sat
	}
	if len(state) == 0 {
		return nil, fmt.Errorf("no state given, use --on, --off, --bri, --hue or --sat")
	}
	return state, nil
}

func lightStateCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	cmd := &cobra.Command{
		Use:   "light-state <id>",
		Short: "Set a light's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.user()
			if err != nil {
				return err
			}
			state, err := flags.state(cmd)
			if err != nil {
				return err
			}
			raw, err := u.SetLightState(cmd.Context(), args[0], state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	flags.register(cmd)
	return cmd
}

func sceneLightStateCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	cmd := &cobra.Command{
		Use:   "scene-light-state <scene> <light>",
		Short: "Set the state stored for a light in a scene",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.user()
			if err != nil {
				return err
			}
			state, err := flags.state(cmd)
			if err != nil {
				return err
			}
			raw, err := u.SetSceneLightState(cmd.Context(), args[0], args[1], state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	flags.register(cmd)
	return cmd
}

func newController(a *app) (*fixtures.Controller, error) {
	u, err := a.user()
	if err != nil {
		return nil, err
	}
	fs := lo.Map(a.cfg.Fixtures, func(f config.Fixture, _ int) fixtures.Fixture {
		return fixtures.Fixture{ID: f.ID, LightID: f.LightID, Name: f.Name}
	})
	return fixtures.NewController(a.logger, u, fs, a.cfg.Throttle, a.cfg.Debounce), nil
}

func toggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <fixture>...",
		Short: "Toggle configured fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(a)
			if err != nil {
				return err
			}
			defer c.Close()
			for _, id := range args {
				on, err := c.Toggle(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: on=%t\n", id, on)
			}
			return nil
		},
	}
}

func colorCmd(a *app) *cobra.Command {
	color := fixtures.Color{}
	cmd := &cobra.Command{
		Use:   "color <fixture>",
		Short: "Set the colour of a configured fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(a)
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.SetColor(cmd.Context(), args[0], color); err != nil {
				return err
			}
			return c.FlushColors()
		},
	}
	cmd.Flags().IntVar(&color.Hue, "hue", 0, "Hue (0-65535)")
	cmd.Flags().IntVar(&color.Sat, "sat", 254, "Saturation (0-254)")
	cmd.Flags().IntVar(&color.Bri, "bri", 254, "Brightness (1-254)")
	return cmd
}

func allCmd(a *app) *cobra.Command {
	var on, off bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Switch every configured fixture on or off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if on == off {
				return fmt.Errorf("use exactly one of --on or --off")
			}
			c, err := newController(a)
			if err != nil {
				return err
			}
			defer c.Close()
			return c.SetAll(cmd.Context(), on)
		},
	}
	cmd.Flags().BoolVar(&on, "on", false, "Switch on")
	cmd.Flags().BoolVar(&off, "off", false, "Switch off")
	return cmd
}
