package checker

import (
	"context"
	"fmt"

	"github.com/quietsec/pwpolicy/internal/aws"
)

// Checker runs a password policy compliance check against one AWS account.
type Checker struct {
	config   Config
	baseline Baseline

	// newClient overrides AWS client construction in tests.
	newClient func(ctx context.Context, opts aws.Options) (aws.Client, error)
}

// New creates a new Checker with the given configuration.
func New(config Config) (*Checker, error) {
	if config.Region == "" {
		config.Region = DefaultRegion
	}
	return &Checker{config: config, baseline: DefaultBaseline()}, nil
}

// status reports a progress update.
func (c *Checker) status(message string) {
	if c.config.OnStatus != nil {
		c.config.OnStatus(message)
	}
}

// Run fetches the account's IAM password policy and evaluates it against
// the baseline checklist.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	c.status("Connecting to AWS...")
	client, err := c.createClient(ctx)
	if err != nil {
		return nil, err
	}

	accountID, err := client.GetCallerIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting account ID: %w", err)
	}
	c.status(fmt.Sprintf("Connected to account %s", accountID))

	report := NewReport(accountID, c.config.Region, c.config.Profile)

	// Account alias is informational only
	alias, _ := client.GetAccountAlias(ctx)
	report.AccountAlias = alias

	c.status("Fetching IAM password policy...")
	policy, err := client.GetPasswordPolicy(ctx)
	if err != nil {
		return nil, err
	}

	c.status("Evaluating password policy against compliance baseline...")
	report.Evaluation = c.baseline.Evaluate(policy)

	return report, nil
}

// createClient creates an AWS client for the configured account.
func (c *Checker) createClient(ctx context.Context) (aws.Client, error) {
	opts := aws.Options{
		Profile:    c.config.Profile,
		Region:     c.config.Region,
		RoleARN:    c.config.RoleARN,
		ExternalID: c.config.ExternalID,
	}

	if c.newClient != nil {
		return c.newClient(ctx, opts)
	}

	client, err := aws.NewClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("creating AWS client: %w", err)
	}
	return client, nil
}
