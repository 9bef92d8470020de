package models

type AppointmentStatus string

const (
	// Appointment statuses (booking flow)
	AppointmentStatusPending   AppointmentStatus = "pending"   // Booked, awaiting confirmation
	AppointmentStatusConfirmed AppointmentStatus = "confirmed" // Confirmed by the store
	AppointmentStatusCancelled AppointmentStatus = "cancelled" // Cancelled; terminal
)

type Appointment struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"` // YYYY-MM-DD
	Time    string            `json:"time"` // slot label, e.g. "9:30 AM"
	Service string            `json:"service"`
	Status  AppointmentStatus `json:"status"`
}

// CanTransition reports whether an appointment may move from its current
// status to the target one. Pending may be confirmed; anything not yet
// cancelled may be cancelled; cancelled accepts nothing further.
func (a Appointment) CanTransition(to AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		return to == AppointmentStatusConfirmed || to == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return to == AppointmentStatusCancelled
	default:
		return false
	}
}
