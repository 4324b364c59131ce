package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionBookingAllowed(t *testing.T) {
	allowed := [][2]string{
		{BookingPending, BookingAccepted},
		{BookingPending, BookingRejected},
		{BookingPending, BookingCancelled},
		{BookingAccepted, BookingCompleted},
		{BookingAccepted, BookingCancelled},
	}

	for _, tc := range allowed {
		assert.NoErrorf(t, TransitionBooking(tc[0], tc[1]), "%s -> %s seharusnya valid", tc[0], tc[1])
	}
}

func TestTransitionBookingRejected(t *testing.T) {
	rejected := [][2]string{
		{BookingAccepted, BookingAccepted},
		{BookingAccepted, BookingRejected},
		{BookingRejected, BookingAccepted},
		{BookingCompleted, BookingAccepted},
		{BookingCompleted, BookingCancelled},
		{BookingCancelled, BookingPending},
		{BookingCancelled, BookingAccepted},
		{BookingPending, BookingCompleted},
	}

	for _, tc := range rejected {
		err := TransitionBooking(tc[0], tc[1])
		require.Errorf(t, err, "%s -> %s seharusnya ditolak", tc[0], tc[1])

		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "booking", invalid.Entity)
		assert.Equal(t, tc[0], invalid.From)
		assert.Equal(t, tc[1], invalid.To)
	}
}

func TestTransitionBookingUnknownStatus(t *testing.T) {
	assert.Error(t, TransitionBooking("nonsense", BookingAccepted))
	assert.Error(t, TransitionBooking(BookingPending, "nonsense"))
}

func TestTransitionLeaveAllowed(t *testing.T) {
	assert.NoError(t, TransitionLeave(LeavePending, LeaveApproved))
	assert.NoError(t, TransitionLeave(LeavePending, LeaveRejected))
	assert.NoError(t, TransitionLeave(LeavePending, LeaveCancelled))
}

func TestTransitionLeaveTerminalStates(t *testing.T) {
	terminals := []string{LeaveApproved, LeaveRejected, LeaveCancelled}
	targets := []string{LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled}

	for _, from := range terminals {
		for _, to := range targets {
			assert.Errorf(t, TransitionLeave(from, to), "%s -> %s seharusnya ditolak", from, to)
		}
	}
}
