package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baysidedata/parcelgraph/internal/audit"
)

func newAuditCmd() *cobra.Command {
	var flagJSON bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run the read-only validation battery against the loaded graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			report, err := audit.Run(ctx, a.store, a.cfg.AuditConfig())
			if err != nil {
				return err
			}
			printAuditReport(cmd, report, flagJSON)
			if !report.Passed {
				return fmt.Errorf("audit gate failed (quality score %.1f)", report.QualityScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the audit report as JSON")
	return cmd
}

func printAuditReport(cmd *cobra.Command, report *audit.Report, asJSON bool) {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	fmt.Fprintf(out, "audit: quality score %.1f, passed=%v\n", report.QualityScore, report.Passed)
	for _, res := range report.Results {
		status := "PASS"
		switch {
		case res.Informational:
			status = "INFO"
		case !res.Pass:
			status = "FAIL"
		}
		fmt.Fprintf(out, "  [%s] %-30s count=%-8d expect: %s\n", status, res.Name, res.Count, res.Expected)
		for category, n := range res.Distribution {
			fmt.Fprintf(out, "         %-20s %d\n", category, n)
		}
	}
}
