package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

func TestEnsureStep(t *testing.T) {
	draft := &Draft{CurrentStep: types.SignupStepRegistration}

	// current and earlier steps may be redone
	assert.NoError(t, draft.EnsureStep(types.SignupStepPackageSelection))
	assert.NoError(t, draft.EnsureStep(types.SignupStepRegistration))

	// skipping ahead is rejected
	err := draft.EnsureStep(types.SignupStepPayment)
	assert.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestAdvance(t *testing.T) {
	draft := &Draft{CurrentStep: types.SignupStepPackageSelection}

	draft.Advance(types.SignupStepPackageSelection)
	assert.Equal(t, types.SignupStepRegistration, draft.CurrentStep)

	draft.Advance(types.SignupStepRegistration)
	assert.Equal(t, types.SignupStepConfirmation, draft.CurrentStep)

	// redoing an earlier step never moves the draft backwards
	draft.Advance(types.SignupStepPackageSelection)
	assert.Equal(t, types.SignupStepConfirmation, draft.CurrentStep)
}

func TestAdvanceStopsAtFinalStep(t *testing.T) {
	draft := &Draft{CurrentStep: types.SignupStepActivation}
	draft.Advance(types.SignupStepActivation)
	assert.Equal(t, types.SignupStepActivation, draft.CurrentStep)
}
