package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupStepOrdering(t *testing.T) {
	assert.Equal(t, 0, SignupStepPackageSelection.Index())
	assert.Equal(t, 4, SignupStepActivation.Index())
	assert.Equal(t, -1, SignupStep("CHECKOUT").Index())

	assert.True(t, SignupStepRegistration.Index() < SignupStepConfirmation.Index())
}

func TestSignupStepNextStep(t *testing.T) {
	assert.Equal(t, SignupStepRegistration, SignupStepPackageSelection.NextStep())
	assert.Equal(t, SignupStepPayment, SignupStepConfirmation.NextStep())

	// the final step has no successor
	assert.Equal(t, SignupStepActivation, SignupStepActivation.NextStep())
}

func TestSignupStepValidate(t *testing.T) {
	assert.NoError(t, SignupStepPayment.Validate())
	assert.Error(t, SignupStep("CHECKOUT").Validate())
}
