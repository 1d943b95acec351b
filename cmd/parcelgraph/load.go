package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baysidedata/parcelgraph/internal/domain"
	"github.com/baysidedata/parcelgraph/internal/extract"
	"github.com/baysidedata/parcelgraph/internal/pipeline"
)

func parseModeFlag(s string) (domain.LoadMode, error) {
	mode, err := domain.ParseLoadMode(s)
	if err != nil {
		return "", fmt.Errorf("--mode: %w", err)
	}
	return mode, nil
}

func newLoadCmd() *cobra.Command {
	var (
		flagMode      string
		flagSkipAudit bool
		flagJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Run the full bulk pass: constraints, nodes, edges, indexes, audit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if err := a.cfg.ValidateExtracts(); err != nil {
				return err
			}
			mode, err := a.cfg.Mode()
			if err != nil {
				return err
			}
			if flagMode != "" {
				if mode, err = parseModeFlag(flagMode); err != nil {
					return err
				}
			}

			owners, ownersClose, err := extract.Open(a.cfg.Extracts.Owners, "owners")
			if err != nil {
				return err
			}
			defer ownersClose.Close()
			properties, propertiesClose, err := extract.Open(a.cfg.Extracts.Properties, "properties")
			if err != nil {
				return err
			}
			defer propertiesClose.Close()
			ownerships, ownershipsClose, err := extract.Open(a.cfg.Extracts.Ownerships, "ownerships")
			if err != nil {
				return err
			}
			defer ownershipsClose.Close()

			opts := pipeline.Options{Mode: mode}
			if !flagSkipAudit {
				auditCfg := a.cfg.AuditConfig()
				opts.Audit = &auditCfg
			}
			svc, err := pipeline.NewService(a.store, a.store, a.log, opts)
			if err != nil {
				return err
			}

			report, runErr := svc.Run(ctx, pipeline.Sources{
				Owners:     owners,
				Properties: properties,
				Ownerships: ownerships,
			})
			printLoadReport(cmd, report, flagJSON)
			if runErr != nil {
				return runErr
			}
			if report.Audit != nil && !report.Audit.Passed {
				return fmt.Errorf("audit gate failed (quality score %.1f)", report.Audit.QualityScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagMode, "mode", "", "duplicate-key policy: reject or upsert (overrides config)")
	cmd.Flags().BoolVar(&flagSkipAudit, "skip-audit", false, "skip the post-load audit battery")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the full load report as JSON")
	return cmd
}

func printLoadReport(cmd *cobra.Command, report *pipeline.LoadReport, asJSON bool) {
	if report == nil {
		return
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "load %s (%s)\n", report.LoadID, report.Duration.Round(time.Millisecond))
	for _, phase := range []pipeline.PhaseReport{report.Owners, report.Properties, report.Ownerships} {
		fmt.Fprintf(out, "  %-11s processed %6d  created %6d  failed %4d\n",
			phase.Extract, phase.Processed, phase.Created, len(phase.Failures))
	}
	byKind := report.FailuresByKind()
	if len(byKind) > 0 {
		fmt.Fprintln(out, "  failures by kind:")
		for kind, count := range byKind {
			fmt.Fprintf(out, "    %-24s %d\n", kind, count)
		}
	}
	if report.Cancelled {
		fmt.Fprintln(out, "  cancelled: partial load committed, no rollback")
	}
	if report.Audit != nil {
		printAuditReport(cmd, report.Audit, false)
	}
}
