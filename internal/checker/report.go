// Package checker evaluates an AWS account's IAM password policy against a
// fixed compliance checklist.
package checker

import "time"

// StatusFunc is called to report progress updates.
type StatusFunc func(message string)

// Config holds the checker configuration.
type Config struct {
	Profile    string // AWS shared config profile (empty = default chain)
	Region     string // AWS region (empty = DefaultRegion)
	RoleARN    string // IAM role to assume (optional)
	ExternalID string // External ID for assume role (optional)

	// OnStatus reports progress (optional, set by the CLI).
	OnStatus StatusFunc
}

// Report is the complete output for one compliance check run.
type Report struct {
	SchemaVersion string     `json:"schema_version"`
	CollectedAt   string     `json:"collected_at"`
	AccountID     string     `json:"account_id"`
	AccountAlias  *string    `json:"account_alias,omitempty"`
	Region        string     `json:"region"`
	Profile       string     `json:"profile,omitempty"`
	Evaluation    Evaluation `json:"evaluation"`
}

// Evaluation classifies every checklist control and carries the resulting
// score and per-standard statuses.
type Evaluation struct {
	CompliantControls    []string        `json:"compliant_controls"`
	NonCompliantControls []string        `json:"non_compliant_controls"`
	MissingControls      []string        `json:"missing_controls"`
	Controls             []ControlResult `json:"controls"`
	ComplianceScore      float64         `json:"compliance_score"`
	SOC2CC62Status       string          `json:"soc2_cc6_2_status"`
	NISTIA5Status        string          `json:"nist_ia_5_status"`
	OverallStatus        string          `json:"overall_status"`
	PolicyType           string          `json:"policy_type"`
}

// ControlResult is the outcome for a single checklist control. Actual is
// nil when the account never configured the attribute.
type ControlResult struct {
	Name      string   `json:"name"`
	Standards []string `json:"standards"`
	Required  any      `json:"required"`
	Actual    any      `json:"actual,omitempty"`
	Status    string   `json:"status"`
}

// NewReport creates a Report envelope with the current timestamp.
func NewReport(accountID, region, profile string) *Report {
	return &Report{
		SchemaVersion: SchemaVersion,
		CollectedAt:   time.Now().UTC().Format(time.RFC3339),
		AccountID:     accountID,
		Region:        region,
		Profile:       profile,
	}
}
