package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tansive/hecate/internal/accessor"
	"github.com/tansive/hecate/internal/authrules"
	"github.com/tansive/hecate/internal/common/httpclient"
	"github.com/tansive/hecate/internal/prompt"
)

// newServerCmd groups the server metadata commands.
func newServerCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server <subcommand>",
		Short: "Fetch metadata about the server",
		Long: `Fetch metadata about the server.

<subcommand>:
    get      Get server meta
    stats    Get geo stats from server`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	cmd.AddCommand(newEndpointCmd(g, accessor.MetaEndpoint, "Get server meta"))
	cmd.AddCommand(newEndpointCmd(g, accessor.StatsEndpoint, "Get geo stats from server"))
	return cmd
}

func newEndpointCmd(g *globalOptions, ep accessor.Endpoint, short string) *cobra.Command {
	var script bool
	cmd := &cobra.Command{
		Use:   ep.Name,
		Short: short,
		Long: short + `.

Without --script, credentials are prompted for on stderr when the server's
auth rules require them and none are configured. The result is printed to
stdout as indented JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := accessor.ModeInteractive
			if script {
				mode = accessor.ModeScripted
			}
			return runEndpoint(cmd, g, ep, mode)
		},
	}
	cmd.Flags().BoolVar(&script, "script", false, "Never prompt; print the result or fail")
	return cmd
}

// runEndpoint wires the configuration into an accessor and runs one call.
func runEndpoint(cmd *cobra.Command, g *globalOptions, ep accessor.Endpoint, mode accessor.Mode) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	conn, err := cfg.Connection()
	if err != nil {
		return err
	}

	client := httpclient.NewClient(conn)
	if mode == accessor.ModeInteractive && conn.Rules == nil {
		rules, err := authrules.Fetch(cmd.Context(), client)
		if err != nil {
			log.Warn().Err(err).Msg("continuing without auth rules")
		} else {
			conn.Rules = rules
		}
	}

	acc := accessor.New(conn,
		accessor.WithTransport(client),
		accessor.WithPrompter(prompt.NewTerminal(cmd.InOrStdin())),
		accessor.WithStdout(cmd.OutOrStdout()),
		accessor.WithPromptOutput(cmd.ErrOrStderr()),
	)
	return acc.Fetch(cmd.Context(), ep, &accessor.Options{Mode: mode}, nil)
}
