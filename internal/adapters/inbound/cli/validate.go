package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/config"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/tui"
	"github.com/IanSimon23/doccheck/internal/application"
	"github.com/IanSimon23/doccheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check the documentation file against the project state",
		Long:  "Scan the project, extract README claims, and reconcile both against the documentation file. Exits 1 when an error-severity finding exists.",
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

			scanSvc := application.NewScanService(scanner.New(cfg.ExcludeDirs...), gitinfo.New())
			svc := application.NewValidateService(scanSvc, cfgLoader)

			report, err := svc.Validate(absPath)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFindings(report.Project.Name, report.Findings))
			}

			// Exit code contract: 1 iff at least one error-severity finding.
			if domain.HasErrors(report.Findings) {
				errors, _, _ := domain.CountSeverities(report.Findings)
				return fmt.Errorf("documentation drift: %d error finding(s)", errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}
