package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietsec/pwpolicy/internal/aws"
	"github.com/quietsec/pwpolicy/internal/checker"
)

func intptr(v int) *int {
	return &v
}

func testReport() *checker.Report {
	policy := &aws.PasswordPolicy{
		MinimumPasswordLength:      14,
		RequireSymbols:             false,
		RequireNumbers:             true,
		RequireUppercase:           true,
		RequireLowercase:           true,
		AllowUsersToChangePassword: true,
		MaxPasswordAge:             intptr(90),
		PasswordReusePrevention:    intptr(12),
	}

	alias := "staging"
	report := checker.NewReport("123456789012", "us-east-1", "default")
	report.AccountAlias = &alias
	report.Evaluation = checker.DefaultBaseline().Evaluate(policy)
	return report
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, testReport()))

	var decoded checker.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "123456789012", decoded.AccountID)
	assert.Equal(t, checker.StatusNonCompliant, decoded.Evaluation.OverallStatus)
	assert.Len(t, decoded.Evaluation.Controls, 9)
	assert.Contains(t, buf.String(), "compliance_score")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(path, testReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded checker.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, checker.SchemaVersion, decoded.SchemaVersion)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "report.json"), testReport())
	require.Error(t, err)
}

func TestTable(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	var buf bytes.Buffer
	Table(&buf, testReport())
	out := buf.String()

	assert.Contains(t, out, "Account:  123456789012 (staging)")
	assert.Contains(t, out, "Region:   us-east-1")
	assert.Contains(t, out, "Profile:  default")
	assert.Contains(t, out, "Policy:   account")
	assert.Contains(t, out, "minimum_password_length")
	assert.Contains(t, out, "require_symbols")
	assert.Contains(t, out, "Compliance Score:  88.89%")
	assert.Contains(t, out, "SOC2 CC6.2:")
	assert.Contains(t, out, "NIST IA-5:")
	assert.Contains(t, out, "Overall:")
	assert.Contains(t, out, checker.StatusNonCompliant)
}

func TestTableMissingPolicy(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	report := checker.NewReport("123456789012", "us-east-1", "")
	report.Evaluation = checker.DefaultBaseline().Evaluate(nil)

	var buf bytes.Buffer
	Table(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "Policy:   none")
	assert.Contains(t, out, "Compliance Score:  0.00%")
	assert.Contains(t, out, checker.StatusMissing)
	assert.NotContains(t, out, "Profile:")
}
