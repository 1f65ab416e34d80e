package cli

import (
	"github.com/spf13/cobra"

	"github.com/echotab/echotab/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dashboards over the HTTP API",
		Long: `Serve every profile of the configured store over a JSON HTTP API.
Drags and resizes run as server-side interactions: begin one, post previews,
then commit or cancel it.`,
		Example: `  echotab serve
  echotab serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			s, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			srv := server.New(server.Options{
				Store:    s,
				Registry: c.registry(),
				Logger:   logger,
				Grid:     c.cfg.Grid,
				StartRow: c.cfg.Placement.StartRow,
			})

			printInfo("Serving dashboards")
			printKeyValue("Store", c.backend())
			printKeyValue("Address", StyleLink.Render(addr))
			printDetail("Press Ctrl+C to stop")
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
