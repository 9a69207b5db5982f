package models

import "time"

// EventResource tags a calendar event with the records it was materialized
// from so the consumer can link back without extra lookups.
type EventResource struct {
	DoctorId      string `json:"doctorId"`
	DoctorName    string `json:"doctorName"`
	Type          string `json:"type"` // "workingHours" | "appointment"
	AppointmentId string `json:"appointmentId,omitempty"`
	PatientId     string `json:"patientId,omitempty"`
	PatientName   string `json:"patientName,omitempty"`
	Status        string `json:"status,omitempty"`
}

// CalendarEvent is transient: recomputed from schedules and appointments on
// every request, never persisted.
type CalendarEvent struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	AllDay   bool          `json:"allDay"`
	Resource EventResource `json:"resource"`
}
