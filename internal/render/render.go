// Package render writes compliance reports to the terminal or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/quietsec/pwpolicy/internal/checker"
)

// JSON writes the report as indented JSON to w.
func JSON(w io.Writer, report *checker.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteFile serialises the report as indented JSON and writes it to path,
// creating or overwriting the file.
func WriteFile(path string, report *checker.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report file %q: %w", path, err)
	}
	return nil
}

// Table renders a human-readable report: account header, one row per
// control, and a summary block with the score and per-standard statuses.
func Table(w io.Writer, report *checker.Report) {
	eval := report.Evaluation

	account := report.AccountID
	if report.AccountAlias != nil {
		account = fmt.Sprintf("%s (%s)", report.AccountID, *report.AccountAlias)
	}
	fmt.Fprintf(w, "Account:  %s\n", account)
	fmt.Fprintf(w, "Region:   %s\n", report.Region)
	if report.Profile != "" {
		fmt.Fprintf(w, "Profile:  %s\n", report.Profile)
	}
	fmt.Fprintf(w, "Policy:   %s\n", eval.PolicyType)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-32s  %-10s  %-10s  %s\n", "CONTROL", "REQUIRED", "ACTUAL", "RESULT")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, result := range eval.Controls {
		actual := "-"
		if result.Actual != nil {
			actual = fmt.Sprint(result.Actual)
		}
		fmt.Fprintf(w, "%-32s  %-10s  %-10s  %s\n",
			result.Name,
			fmt.Sprint(result.Required),
			actual,
			statusLabel(result.Status),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Compliance Score:  %.2f%%\n", eval.ComplianceScore)
	fmt.Fprintf(w, "%-18s %s\n", "SOC2 CC6.2:", statusLabel(eval.SOC2CC62Status))
	fmt.Fprintf(w, "%-18s %s\n", "NIST IA-5:", statusLabel(eval.NISTIA5Status))
	fmt.Fprintf(w, "%-18s %s\n", "Overall:", statusLabel(eval.OverallStatus))
}

// statusLabel colors a status word for terminal output. Status is always
// the last column so the ANSI codes do not break alignment.
func statusLabel(status string) string {
	switch status {
	case checker.StatusCompliant:
		return color.GreenString(status)
	case checker.StatusNonCompliant:
		return color.RedString(status)
	case checker.StatusMissing:
		return color.YellowString(status)
	}
	return status
}
