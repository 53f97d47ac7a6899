// Package aws provides AWS API client functionality.
package aws

// PasswordPolicy represents an IAM account password policy.
//
// MaxPasswordAge and PasswordReusePrevention are nil when the account has
// never configured password expiry or reuse prevention; IAM omits those
// attributes instead of returning zero values.
type PasswordPolicy struct {
	MinimumPasswordLength      int
	RequireSymbols             bool
	RequireNumbers             bool
	RequireUppercase           bool
	RequireLowercase           bool
	AllowUsersToChangePassword bool
	ExpirePasswords            bool
	MaxPasswordAge             *int
	PasswordReusePrevention    *int
	HardExpiry                 bool
}
