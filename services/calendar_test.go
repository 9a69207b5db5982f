package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccurrencesOfWeekday_TwoWeekWindow(t *testing.T) {
	// Wednesday 2026-01-07 through Tuesday 2026-01-20
	start := date(2026, time.January, 7)
	end := date(2026, time.January, 20)

	mondays := OccurrencesOfWeekday(time.Monday, start, end)
	assert.Len(t, mondays, 2)
	assert.Equal(t, date(2026, time.January, 12), mondays[0])
	assert.Equal(t, date(2026, time.January, 19), mondays[1])

	// window starts on the requested weekday
	wednesdays := OccurrencesOfWeekday(time.Wednesday, start, end)
	assert.Len(t, wednesdays, 2)
	assert.Equal(t, start, wednesdays[0])
}

func TestOccurrencesOfWeekday_EmptyWindow(t *testing.T) {
	// Wednesday through Friday contains no Monday
	start := date(2026, time.January, 7)
	end := date(2026, time.January, 9)
	assert.Empty(t, OccurrencesOfWeekday(time.Monday, start, end))
}

func TestWorkingHoursEvents(t *testing.T) {
	schedule := models.DoctorSchedule{
		DoctorId:   "D0001",
		DoctorName: "Asha Rao",
		Entries: []models.WorkScheduleEntry{
			{Day: "Monday", IsWorking: true, StartTime: "09:00", EndTime: "17:00"},
			{Day: "Tuesday", IsWorking: false, StartTime: "09:00", EndTime: "17:00"},
		},
	}
	start := date(2026, time.January, 7)
	end := date(2026, time.January, 20)

	events, err := workingHoursEvents(schedule, start, end)
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "wh-D0001-2026-01-12", first.ID)
	assert.Equal(t, "Working Hours", first.Title)
	assert.Equal(t, time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2026, time.January, 12, 17, 0, 0, 0, time.UTC), first.End)
	assert.Equal(t, EventTypeWorkingHours, first.Resource.Type)
	assert.Equal(t, "Asha Rao", first.Resource.DoctorName)
}

func TestWorkingHoursEvents_MalformedClockFailsFast(t *testing.T) {
	schedule := models.DoctorSchedule{
		DoctorId: "D0001",
		Entries: []models.WorkScheduleEntry{
			{Day: "Monday", IsWorking: true, StartTime: "9 am", EndTime: "17:00"},
		},
	}
	_, err := workingHoursEvents(schedule, date(2026, time.January, 7), date(2026, time.January, 20))
	assert.EqualError(t, err, INVALID_TIME_FORMAT)
}

func TestAppointmentEvent_DefaultDuration(t *testing.T) {
	apt := models.Appointment{
		Code:      "A0001",
		DoctorId:  "D0001",
		PatientId: "P0001",
		Datetime:  time.Date(2026, time.January, 12, 10, 30, 0, 0, time.UTC),
		Status:    models.StatusConfirmed,
	}
	event, err := appointmentEvent(apt, "Asha Rao")
	assert.NoError(t, err)
	assert.Equal(t, "apt-A0001", event.ID)
	assert.Equal(t, apt.Datetime, event.Start)
	assert.Equal(t, apt.Datetime.Add(30*time.Minute), event.End)
	assert.Equal(t, EventTypeAppointment, event.Resource.Type)
	assert.Equal(t, models.StatusConfirmed, event.Resource.Status)
}

func TestAppointmentEvent_ExplicitTimes(t *testing.T) {
	apt := models.Appointment{
		Code:      "A0001",
		Datetime:  time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "14:45",
	}
	event, err := appointmentEvent(apt, "")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 12, 14, 0, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Date(2026, time.January, 12, 14, 45, 0, 0, time.UTC), event.End)
}

func TestAppointmentEvent_PatientNameFallback(t *testing.T) {
	apt := models.Appointment{Code: "A0001", Datetime: time.Now()}
	event, err := appointmentEvent(apt, "")
	assert.NoError(t, err)
	assert.Equal(t, "Patient", event.Title)
	assert.Equal(t, "Patient", event.Resource.PatientName)

	apt.Patient = &models.User{FirstName: "Ravi", LastName: "Kumar"}
	event, err = appointmentEvent(apt, "")
	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", event.Title)
}

func TestBuildCalendarEvents_DoctorFilter(t *testing.T) {
	schedules := []models.DoctorSchedule{
		{DoctorId: "D0001", DoctorName: "Asha Rao", Entries: []models.WorkScheduleEntry{
			{Day: "Monday", IsWorking: true, StartTime: "09:00", EndTime: "17:00"},
		}},
		{DoctorId: "D0002", DoctorName: "Vikram Shah", Entries: []models.WorkScheduleEntry{
			{Day: "Monday", IsWorking: true, StartTime: "10:00", EndTime: "18:00"},
		}},
	}
	appointments := []models.Appointment{
		{Code: "A0001", DoctorId: "D0001", Datetime: time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)},
		{Code: "A0002", DoctorId: "D0002", Datetime: time.Date(2026, time.January, 12, 11, 0, 0, 0, time.UTC)},
	}
	start := date(2026, time.January, 12)
	end := date(2026, time.January, 12)

	events, err := BuildCalendarEvents(schedules, appointments, "D0001", start, end)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "D0001", e.Resource.DoctorId)
	}

	all, err := BuildCalendarEvents(schedules, appointments, AllDoctors, start, end)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestBuildCalendarEvents_ResolvesDoctorNameForAppointments(t *testing.T) {
	schedules := []models.DoctorSchedule{
		{DoctorId: "D0001", DoctorName: "Asha Rao", Entries: []models.WorkScheduleEntry{}},
	}
	appointments := []models.Appointment{
		{Code: "A0001", DoctorId: "D0001", Datetime: time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)},
	}
	events, err := BuildCalendarEvents(schedules, appointments, AllDoctors, date(2026, time.January, 12), date(2026, time.January, 12))
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "Asha Rao", events[0].Resource.DoctorName)
}

func TestParseWindowDate(t *testing.T) {
	d, err := parseWindowDate("2026-01-12")
	assert.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 12), d)

	d, err = parseWindowDate("2026-01-12T09:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 12, 9, 30, 0, 0, time.UTC), d)

	_, err = parseWindowDate("")
	assert.EqualError(t, err, INVALID_DATE_WINDOW)

	_, err = parseWindowDate("12/01/2026")
	assert.EqualError(t, err, INVALID_DATE_WINDOW)
}

func TestParseWindowEnd_DateOnlyCoversWholeDay(t *testing.T) {
	end, err := parseWindowEnd("2026-01-20")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 20, 23, 59, 59, 0, time.UTC), end)

	// an explicit timestamp passes through untouched
	end, err = parseWindowEnd("2026-01-20T12:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC), end)

	_, err = parseWindowEnd("")
	assert.EqualError(t, err, INVALID_DATE_WINDOW)
}

func TestWindowEnd_LastDayAgreesAcrossEventSources(t *testing.T) {
	start := date(2026, time.January, 7)
	end, err := parseWindowEnd("2026-01-19") // a Monday
	assert.NoError(t, err)

	// the weekday expansion still emits a block on the final day
	mondays := OccurrencesOfWeekday(time.Monday, start, end)
	assert.Len(t, mondays, 2)
	assert.Equal(t, date(2026, time.January, 19), mondays[1])

	// and an appointment later that same day falls inside the window
	lastDayAppointment := time.Date(2026, time.January, 19, 15, 30, 0, 0, time.UTC)
	assert.False(t, lastDayAppointment.After(end))
}
