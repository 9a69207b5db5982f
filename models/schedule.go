package models

import "time"

// WorkScheduleEntry is a doctor's recurring weekly availability for one
// weekday. A doctor carries exactly one entry per weekday after
// normalization.
type WorkScheduleEntry struct {
	DoctorId     string    `json:"doctorId" bson:"doctorId"`
	Day          string    `json:"day" bson:"day"` // "Sunday".."Saturday"
	IsWorking    bool      `json:"isWorking" bson:"isWorking"`
	StartTime    string    `json:"startTime" bson:"startTime"` // HH:mm
	EndTime      string    `json:"endTime" bson:"endTime"`     // HH:mm
	SlotDuration int       `json:"slotDuration" bson:"slotDuration"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DoctorSchedule groups a doctor's weekly entries with the display name the
// calendar needs on every emitted event.
type DoctorSchedule struct {
	DoctorId   string              `json:"doctorId"`
	DoctorName string              `json:"doctorName"`
	Entries    []WorkScheduleEntry `json:"entries"`
}
