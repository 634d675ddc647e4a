package types

import (
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// SignupStep is one stage of the subscription signup wizard. Steps are
// strictly ordered; a draft can only advance to the next step once the
// current one is satisfied.
type SignupStep string

const (
	SignupStepPackageSelection SignupStep = "PACKAGE_SELECTION"
	SignupStepRegistration     SignupStep = "REGISTRATION"
	SignupStepConfirmation     SignupStep = "CONFIRMATION"
	SignupStepPayment          SignupStep = "PAYMENT"
	SignupStepActivation       SignupStep = "ACTIVATION"
)

// signupStepOrder is the canonical wizard ordering
var signupStepOrder = []SignupStep{
	SignupStepPackageSelection,
	SignupStepRegistration,
	SignupStepConfirmation,
	SignupStepPayment,
	SignupStepActivation,
}

func (s SignupStep) String() string {
	return string(s)
}

func (s SignupStep) Validate() error {
	if !lo.Contains(signupStepOrder, s) {
		return ierr.NewError("invalid signup step").
			WithHint("Invalid signup step").
			WithReportableDetails(map[string]any{
				"allowed_values": signupStepOrder,
				"provided_value": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Index returns the position of the step in the wizard ordering,
// or -1 for an unknown step
func (s SignupStep) Index() int {
	return lo.IndexOf(signupStepOrder, s)
}

// NextStep returns the step following s, or s itself when s is the
// final step
func (s SignupStep) NextStep() SignupStep {
	idx := s.Index()
	if idx < 0 || idx >= len(signupStepOrder)-1 {
		return s
	}
	return signupStepOrder[idx+1]
}
