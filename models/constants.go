package models

// Mongo collection names
const (
	UserCollection        = "USERS"
	AppointmentCollection = "APPOINTMENTS"
	ScheduleCollection    = "WORK_SCHEDULES"
	LabTestCollection     = "LAB_TESTS"
	PaymentCollection     = "PAYMENTS"
	NoteCollection        = "NOTES"
	RoleCollection        = "ROLES"
)

// Cache key prefixes
const (
	UserKey        = "USER"
	AppointmentKey = "APPOINTMENT"
	ScheduleKey    = "SCHEDULE"
	LabTestKey     = "LABTEST"
	PaymentKey     = "PAYMENT"
	NoteKey        = "NOTE"
	RoleKey        = "ROLE"
)

// Appointment lifecycle statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusNoShow    = "no-show"
)
