package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/config"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/profilestore"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/application"
)

func newInitCmd() *cobra.Command {
	var (
		profile string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a documentation file from the current project state",
		Long:  "Scan the project and write a documentation skeleton, pre-filled from detected facts and stored profile defaults.",
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

			cfgLoader := config.New()
			cfg, err := cfgLoader.Load(absPath)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, cfg.DocsFile)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.DocsFile)
				}
			}

			scanSvc := application.NewScanService(scanner.New(cfg.ExcludeDirs...), gitinfo.New())
			genSvc := application.NewGenerateService(scanSvc, profilestore.New(), cfgLoader)

			doc, err := genSvc.Generate(absPath, profile)
			if err != nil {
				return fmt.Errorf("generating documentation: %w", err)
			}

			if err := os.WriteFile(dest, []byte(doc), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", cfg.DocsFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", cfg.DocsFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile whose defaults pre-fill the sections")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing documentation file")

	return cmd
}
