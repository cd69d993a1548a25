package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidekit/internal/api"
	"github.com/matzehuels/slidekit/pkg/store"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor core over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			return c.withStore(cmd.Context(), func(st *store.Store) error {
				return api.NewServer(st, c.cfg, c.Logger).ListenAndServe(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
