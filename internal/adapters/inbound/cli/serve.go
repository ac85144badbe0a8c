package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IanSimon23/doccheck/internal/adapters/inbound/httpapi"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/config"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
)

func newServeCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Start the local documentation server",
		Long:  "Serve the JSON API and the bundled editor page for one project.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}

			srv, err := httpapi.NewServer(absPath, cfg)
			if err != nil {
				return err
			}
			if watch {
				stop, err := srv.Watch()
				if err != nil {
					return fmt.Errorf("starting watcher: %w", err)
				}
				defer stop()
			}

			target := absPath
			if short, err := gitinfo.New().ShortHash(absPath); err == nil {
				target = fmt.Sprintf("%s (%s)", absPath, short)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "doccheck serving %s on http://%s\n", target, addr)
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides .doccheck.yaml)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-scan when project files change")

	return cmd
}
