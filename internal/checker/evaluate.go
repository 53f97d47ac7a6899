package checker

import "github.com/quietsec/pwpolicy/internal/aws"

// Evaluate scores a password policy against the baseline checklist.
//
// Each control is classified as compliant, non-compliant, or missing. A nil
// policy marks every control missing with an overall NON_COMPLIANT verdict.
// Evaluate never fails; unset attributes are recorded as missing controls
// rather than errors.
func (b Baseline) Evaluate(policy *aws.PasswordPolicy) Evaluation {
	eval := Evaluation{
		CompliantControls:    []string{},
		NonCompliantControls: []string{},
		MissingControls:      []string{},
		SOC2CC62Status:       StatusUnknown,
		NISTIA5Status:        StatusUnknown,
		OverallStatus:        StatusUnknown,
		PolicyType:           PolicyTypeNone,
	}

	checks := b.checks()

	if policy == nil {
		for _, check := range checks {
			eval.MissingControls = append(eval.MissingControls, check.name)
			eval.Controls = append(eval.Controls, ControlResult{
				Name:      check.name,
				Standards: controlStandards,
				Required:  check.required,
				Status:    StatusMissing,
			})
		}
		eval.OverallStatus = StatusNonCompliant
		return eval
	}

	eval.PolicyType = PolicyTypeAccount

	compliantCount := 0
	for _, check := range checks {
		result := ControlResult{
			Name:      check.name,
			Standards: controlStandards,
			Required:  check.required,
		}

		actual, present := check.actual(policy)
		switch {
		case !present:
			result.Status = StatusMissing
			eval.MissingControls = append(eval.MissingControls, check.name)
		case check.satisfied(policy):
			result.Actual = actual
			result.Status = StatusCompliant
			eval.CompliantControls = append(eval.CompliantControls, check.name)
			compliantCount++
		default:
			result.Actual = actual
			result.Status = StatusNonCompliant
			eval.NonCompliantControls = append(eval.NonCompliantControls, check.name)
		}

		eval.Controls = append(eval.Controls, result)
	}

	eval.ComplianceScore = scorePercent(compliantCount, len(checks))
	eval.OverallStatus = overallStatus(eval.ComplianceScore)
	eval.SOC2CC62Status = standardStatus(eval.Controls, StandardSOC2CC62)
	eval.NISTIA5Status = standardStatus(eval.Controls, StandardNISTIA5)

	return eval
}

// overallStatus maps a compliance score to the overall verdict.
func overallStatus(score float64) string {
	if score >= ComplianceScoreThreshold {
		return StatusCompliant
	}
	return StatusNonCompliant
}

// standardStatus returns COMPLIANT when every control mapped to the given
// standard is compliant, NON_COMPLIANT otherwise.
func standardStatus(controls []ControlResult, standard string) string {
	for _, result := range controls {
		if !containsString(result.Standards, standard) {
			continue
		}
		if result.Status != StatusCompliant {
			return StatusNonCompliant
		}
	}
	return StatusCompliant
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
