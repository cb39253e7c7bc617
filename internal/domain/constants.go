package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinAdults                   = 1
	MaxBookingParticipants      = 50
	MinRating                   = 1
	MaxRating                   = 5
	MaxCommentLength            = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Default policy values (reference cancellation policy)
const (
	DefaultModificationFee        = 25
	DefaultModificationNoticeHrs  = 24 // modifications allowed up to 24h before start
	DefaultAvailabilityTTLSeconds = 60
)

// InactiveStatuses список статусов, не занимающих места в слоте
// Используется при подсчёте доступных мест
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// CapacityStatuses список статусов, занимающих места в слоте
var CapacityStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
