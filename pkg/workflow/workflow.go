package workflow

import "fmt"

// Status booking di marketplace.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Status pengajuan cuti/izin.
const (
	LeavePending   = "pending"
	LeaveApproved  = "approved"
	LeaveRejected  = "rejected"
	LeaveCancelled = "cancelled"
)

// InvalidTransitionError menandai transisi status yang tidak diizinkan.
// Status entitas tidak boleh berubah saat error ini terjadi.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transisi status %s tidak valid: %s -> %s", e.Entity, e.From, e.To)
}

// bookingTransitions: pending -> accepted|rejected|cancelled,
// accepted -> completed|cancelled. Status lain terminal.
var bookingTransitions = map[string][]string{
	BookingPending:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted: {BookingCompleted, BookingCancelled},
}

// leaveTransitions: pending -> approved|rejected (admin/HR),
// pending -> cancelled (pemohon). Status lain terminal.
var leaveTransitions = map[string][]string{
	LeavePending: {LeaveApproved, LeaveRejected, LeaveCancelled},
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionBooking memvalidasi perpindahan status booking.
func TransitionBooking(from, to string) error {
	if !transitionAllowed(bookingTransitions, from, to) {
		return &InvalidTransitionError{Entity: "booking", From: from, To: to}
	}
	return nil
}

// TransitionLeave memvalidasi perpindahan status pengajuan cuti.
func TransitionLeave(from, to string) error {
	if !transitionAllowed(leaveTransitions, from, to) {
		return &InvalidTransitionError{Entity: "pengajuan", From: from, To: to}
	}
	return nil
}
