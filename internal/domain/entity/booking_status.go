package entity

// BookingStatus is shared by appointments and exams.
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "SCHEDULED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

// IsValid reports whether s is one of the four enumerated statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCanceled, BookingStatusNoShow:
		return true
	}
	return false
}
