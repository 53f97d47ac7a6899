package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/quietsec/pwpolicy/internal/checker"
	"github.com/quietsec/pwpolicy/internal/render"
)

func newRootCmd() *cobra.Command {
	var (
		profile    string
		region     string
		roleARN    string
		externalID string
		reportFmt  string
		output     string
	)

	cmd := &cobra.Command{
		Use:     "pwpolicy",
		Short:   "Check an AWS account's IAM password policy against SOC2 CC6.2 and NIST IA-5",
		Version: Version,
		Long: `pwpolicy fetches the account's IAM password policy and scores it against
a fixed nine-control compliance baseline (length, complexity, rotation,
reuse prevention, expiry behavior).

Exits 0 when the overall status is COMPLIANT, 1 otherwise.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := checker.New(checker.Config{
				Profile:    profile,
				Region:     region,
				RoleARN:    roleARN,
				ExternalID: externalID,
				OnStatus: func(message string) {
					log.Info(message)
				},
			})
			if err != nil {
				return err
			}

			report, err := c.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("assessment failed: %w", err)
			}

			if output != "" {
				if err := render.WriteFile(output, report); err != nil {
					return err
				}
			}

			if reportFmt == "json" {
				if err := render.JSON(os.Stdout, report); err != nil {
					return err
				}
			} else {
				render.Table(os.Stdout, report)
			}

			if report.Evaluation.OverallStatus != checker.StatusCompliant {
				exitCode = 1
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "AWS profile name (default: uses environment / default profile)")
	cmd.Flags().StringVar(&region, "region", checker.DefaultRegion, "AWS region")
	cmd.Flags().StringVar(&roleARN, "role-arn", "", "IAM role to assume before the check")
	cmd.Flags().StringVar(&externalID, "external-id", "", "External ID for the assumed role")
	cmd.Flags().StringVar(&reportFmt, "report", "table", "Output format: json or table")
	cmd.Flags().StringVar(&output, "output", "", "Write full JSON report to this file path (in addition to stdout output)")

	return cmd
}
