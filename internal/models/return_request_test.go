package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnStatusTransitions(t *testing.T) {
	all := []ReturnStatus{
		ReturnStatusRequested, ReturnStatusApproved, ReturnStatusRejected,
		ReturnStatusReceived, ReturnStatusRefunded,
	}

	allowed := map[ReturnStatus][]ReturnStatus{
		ReturnStatusRequested: {ReturnStatusApproved, ReturnStatusRejected},
		ReturnStatusApproved:  {ReturnStatusReceived},
		ReturnStatusReceived:  {ReturnStatusRefunded},
		ReturnStatusRejected:  {},
		ReturnStatusRefunded:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReturnReasonIsValid(t *testing.T) {
	for _, reason := range []ReturnReason{
		ReturnReasonSize, ReturnReasonDamaged, ReturnReasonWrongItem,
		ReturnReasonChangedMind, ReturnReasonOther,
	} {
		assert.True(t, reason.IsValid(), string(reason))
	}

	assert.False(t, ReturnReason("regret").IsValid())
	assert.False(t, ReturnReason("").IsValid())
}
