package aws

import (
	"errors"
	"fmt"
	"testing"

	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

func TestIsNoSuchEntity(t *testing.T) {
	nse := &iamtypes.NoSuchEntityException{}
	if !isNoSuchEntity(nse) {
		t.Fatalf("expected NoSuchEntityException to be detected")
	}

	wrapped := fmt.Errorf("getting password policy: %w", nse)
	if !isNoSuchEntity(wrapped) {
		t.Fatalf("expected wrapped NoSuchEntityException to be detected")
	}

	if isNoSuchEntity(errors.New("AccessDenied")) {
		t.Fatalf("expected unrelated error to not match")
	}

	if isNoSuchEntity(nil) {
		t.Fatalf("expected nil error to not match")
	}
}
