package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every accepted status. Transitions are not
// constrained: any status may follow any other.
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCompleted,
	BookingCancelled,
}

func IsValidBookingStatus(s string) bool {
	for _, st := range BookingStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email,omitempty"`
	Service   string        `json:"service"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
