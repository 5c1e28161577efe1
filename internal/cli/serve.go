package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-grid/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve grid composition as MCP tools over stdin/stdout",
		Long: `serve runs a Model Context Protocol server that speaks JSON-RPC over
stdin/stdout. Logs still go to stderr, so stdout carries only protocol
messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("starting MCP server", "version", version, "commit", commit)
			srv := server.New(logger)
			return srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
