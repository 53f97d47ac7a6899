// pwpolicy checks an AWS account's IAM password policy against a fixed
// SOC2 CC6.2 / NIST IA-5 compliance checklist and reports a pass/fail
// verdict per control.
package main

import (
	"os"

	logsetup "github.com/quietsec/pwpolicy/internal/log"
)

// Version is set at build time via -ldflags
var Version = "dev"

// exitCode is set by the root command: 0 when the account is compliant,
// 1 otherwise.
var exitCode int

func main() {
	logsetup.Init()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
