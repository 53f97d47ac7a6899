package checker

import "github.com/quietsec/pwpolicy/internal/aws"

// Control names for the password policy checklist.
const (
	ControlMinimumPasswordLength      = "minimum_password_length"
	ControlRequireSymbols             = "require_symbols"
	ControlRequireNumbers             = "require_numbers"
	ControlRequireUppercase           = "require_uppercase"
	ControlRequireLowercase           = "require_lowercase"
	ControlMaxPasswordAge             = "max_password_age"
	ControlPasswordReusePrevention    = "password_reuse_prevention"
	ControlAllowUsersToChangePassword = "allow_users_to_change_password"
	ControlHardExpiry                 = "hard_expiry"
)

// controlStandards is the set of standard identifiers every checklist
// control maps to. All nine controls serve both standards.
var controlStandards = []string{StandardSOC2CC62, StandardNISTIA5}

// Baseline holds the required value for every control in the checklist.
// It is immutable after construction.
type Baseline struct {
	MinimumPasswordLength      int
	RequireSymbols             bool
	RequireNumbers             bool
	RequireUppercase           bool
	RequireLowercase           bool
	MaxPasswordAge             int
	PasswordReusePrevention    int
	AllowUsersToChangePassword bool
	HardExpiry                 bool
}

// DefaultBaseline returns the required control values for SOC2 CC6.2 and
// NIST IA-5.
func DefaultBaseline() Baseline {
	return Baseline{
		MinimumPasswordLength:      12,
		RequireSymbols:             true,
		RequireNumbers:             true,
		RequireUppercase:           true,
		RequireLowercase:           true,
		MaxPasswordAge:             90,
		PasswordReusePrevention:    12,
		AllowUsersToChangePassword: true,
		HardExpiry:                 false,
	}
}

// controlCheck binds one checklist control to the way its actual value is
// read from a policy and compared against the baseline.
type controlCheck struct {
	name     string
	required any

	// actual returns the policy's value for this control. The second
	// return is false when the account never configured the attribute.
	actual func(p *aws.PasswordPolicy) (any, bool)

	// satisfied reports whether the actual value meets the requirement.
	// Only called when the value is present.
	satisfied func(p *aws.PasswordPolicy) bool
}

// checks returns the checklist in report order.
//
// Comparison direction per control: minimum length and reuse prevention are
// floors (actual >= required), max password age is a ceiling (actual <=
// required, rotation at least as frequent as the baseline demands), and
// boolean controls require equality.
func (b Baseline) checks() []controlCheck {
	return []controlCheck{
		{
			name:     ControlMinimumPasswordLength,
			required: b.MinimumPasswordLength,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.MinimumPasswordLength, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.MinimumPasswordLength >= b.MinimumPasswordLength
			},
		},
		{
			name:     ControlRequireSymbols,
			required: b.RequireSymbols,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.RequireSymbols, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.RequireSymbols == b.RequireSymbols
			},
		},
		{
			name:     ControlRequireNumbers,
			required: b.RequireNumbers,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.RequireNumbers, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.RequireNumbers == b.RequireNumbers
			},
		},
		{
			name:     ControlRequireUppercase,
			required: b.RequireUppercase,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.RequireUppercase, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.RequireUppercase == b.RequireUppercase
			},
		},
		{
			name:     ControlRequireLowercase,
			required: b.RequireLowercase,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.RequireLowercase, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.RequireLowercase == b.RequireLowercase
			},
		},
		{
			name:     ControlMaxPasswordAge,
			required: b.MaxPasswordAge,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				if p.MaxPasswordAge == nil {
					return nil, false
				}
				return *p.MaxPasswordAge, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.MaxPasswordAge != nil && *p.MaxPasswordAge <= b.MaxPasswordAge
			},
		},
		{
			name:     ControlPasswordReusePrevention,
			required: b.PasswordReusePrevention,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				if p.PasswordReusePrevention == nil {
					return nil, false
				}
				return *p.PasswordReusePrevention, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.PasswordReusePrevention != nil && *p.PasswordReusePrevention >= b.PasswordReusePrevention
			},
		},
		{
			name:     ControlAllowUsersToChangePassword,
			required: b.AllowUsersToChangePassword,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.AllowUsersToChangePassword, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.AllowUsersToChangePassword == b.AllowUsersToChangePassword
			},
		},
		{
			name:     ControlHardExpiry,
			required: b.HardExpiry,
			actual: func(p *aws.PasswordPolicy) (any, bool) {
				return p.HardExpiry, true
			},
			satisfied: func(p *aws.PasswordPolicy) bool {
				return p.HardExpiry == b.HardExpiry
			},
		},
	}
}
