package checker

// Schema version.
const SchemaVersion = "1.0.0"

// Compliance status values.
const (
	StatusCompliant    = "COMPLIANT"
	StatusNonCompliant = "NON_COMPLIANT"
	StatusMissing      = "MISSING"
	StatusUnknown      = "UNKNOWN"
)

// Policy type values.
const (
	PolicyTypeAccount = "account" // account-level password policy is configured
	PolicyTypeNone    = "none"    // no password policy on the account
)

// ComplianceScoreThreshold is the minimum score for an overall COMPLIANT verdict.
const ComplianceScoreThreshold = 90.0

// DefaultRegion is used when no region is configured. IAM is a global
// service served out of us-east-1.
const DefaultRegion = "us-east-1"

// Standard identifiers the checklist maps to.
const (
	StandardSOC2CC62 = "SOC2-CC6.2"
	StandardNISTIA5  = "NIST-IA-5"
)
