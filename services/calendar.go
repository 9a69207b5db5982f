package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

const (
	clockLayout                = "15:04"
	defaultAppointmentDuration = 30 * time.Minute

	// selectedDoctor value meaning "materialize for every doctor"
	AllDoctors = "all"

	EventTypeWorkingHours = "workingHours"
	EventTypeAppointment  = "appointment"
)

var weekdayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

/*
* Validate and split an HH:mm clock string
* Malformed times fail fast instead of surfacing at render time
 */
func parseClock(s string) (int, int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		log.Println("Malformed clock string: ", s)
		return 0, 0, errors.New(INVALID_TIME_FORMAT)
	}
	return t.Hour(), t.Minute(), nil
}

func atClock(date time.Time, hour, min int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, date.Location())
}

/*
* Every date in [windowStart, windowEnd] falling on the given weekday
* First match on or after windowStart, then seven-day steps
* Finite and free of shared date mutation
 */
func OccurrencesOfWeekday(day time.Weekday, windowStart, windowEnd time.Time) []time.Time {
	start := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, windowStart.Location())
	offset := (int(day) - int(start.Weekday()) + 7) % 7
	occurrences := []time.Time{}
	for d := start.AddDate(0, 0, offset); !d.After(windowEnd); d = d.AddDate(0, 0, 7) {
		occurrences = append(occurrences, d)
	}
	return occurrences
}

/*
* One workingHours event per occurrence of each working weekday entry
* Event start/end combine the occurrence date with the template clocks
 */
func workingHoursEvents(schedule models.DoctorSchedule, windowStart, windowEnd time.Time) ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}
	for _, entry := range schedule.Entries {
		if !entry.IsWorking {
			continue
		}
		weekday, ok := weekdayIndex[entry.Day]
		if !ok {
			log.Println("Unknown weekday in schedule entry: ", entry.Day)
			return nil, errors.New(INVALID_DAY_NAME)
		}
		startHour, startMin, err := parseClock(entry.StartTime)
		if err != nil {
			return nil, err
		}
		endHour, endMin, err := parseClock(entry.EndTime)
		if err != nil {
			return nil, err
		}
		for _, date := range OccurrencesOfWeekday(weekday, windowStart, windowEnd) {
			events = append(events, models.CalendarEvent{
				ID:    fmt.Sprintf("wh-%s-%s", schedule.DoctorId, date.Format("2006-01-02")),
				Title: "Working Hours",
				Start: atClock(date, startHour, startMin),
				End:   atClock(date, endHour, endMin),
				Resource: models.EventResource{
					DoctorId:   schedule.DoctorId,
					DoctorName: schedule.DoctorName,
					Type:       EventTypeWorkingHours,
				},
			})
		}
	}
	return events, nil
}

/*
* Normalize one appointment into an event
* Start falls back to the appointment's own stored hour and minute
* End falls back to start plus the default thirty-minute duration
* Patient display name falls back to "Patient" when nothing is embedded
 */
func appointmentEvent(apt models.Appointment, doctorName string) (models.CalendarEvent, error) {
	start := apt.Datetime
	if apt.StartTime != "" {
		h, m, err := parseClock(apt.StartTime)
		if err != nil {
			return models.CalendarEvent{}, err
		}
		start = atClock(apt.Datetime, h, m)
	}

	var end time.Time
	if apt.EndTime != "" {
		h, m, err := parseClock(apt.EndTime)
		if err != nil {
			return models.CalendarEvent{}, err
		}
		end = atClock(apt.Datetime, h, m)
	} else {
		end = start.Add(defaultAppointmentDuration)
	}

	patientName := "Patient"
	if apt.Patient != nil {
		if name := strings.TrimSpace(apt.Patient.FirstName + " " + apt.Patient.LastName); name != "" {
			patientName = name
		}
	}

	return models.CalendarEvent{
		ID:    "apt-" + apt.Code,
		Title: patientName,
		Start: start,
		End:   end,
		Resource: models.EventResource{
			DoctorId:      apt.DoctorId,
			DoctorName:    doctorName,
			Type:          EventTypeAppointment,
			AppointmentId: apt.Code,
			PatientId:     apt.PatientId,
			PatientName:   patientName,
			Status:        apt.Status,
		},
	}, nil
}

/*
* Expand working-hours blocks and normalize appointments into one flat list
* A concrete doctor selection skips every other doctor entirely
* No sorting, the calendar widget positions events by start time itself
 */
func BuildCalendarEvents(schedules []models.DoctorSchedule, appointments []models.Appointment, selectedDoctor string, windowStart, windowEnd time.Time) ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}

	doctorNames := make(map[string]string, len(schedules))
	for _, schedule := range schedules {
		doctorNames[schedule.DoctorId] = schedule.DoctorName
		if selectedDoctor != AllDoctors && schedule.DoctorId != selectedDoctor {
			continue
		}
		working, err := workingHoursEvents(schedule, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}
		events = append(events, working...)
	}

	for _, apt := range appointments {
		if selectedDoctor != AllDoctors && apt.DoctorId != selectedDoctor {
			continue
		}
		event, err := appointmentEvent(apt, doctorNames[apt.DoctorId])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

/*
* Appointments inside the window, doctor-scoped when one is selected
* Patient documents embedded through a $lookup so the materializer can
* resolve display names without extra round trips
 */
func fetchWindowAppointments(ctx context.Context, selectedDoctor string, windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	match := bson.M{"datetime": bson.M{"$gte": windowStart, "$lte": windowEnd}}
	if selectedDoctor != AllDoctors {
		match["doctorId"] = selectedDoctor
	}
	pipeline := []bson.M{
		{"$match": match},
		{"$lookup": bson.M{
			"from":         models.UserCollection,
			"localField":   "patientId",
			"foreignField": "code",
			"as":           "patient",
		}},
		{"$unwind": bson.M{"path": "$patient", "preserveNullAndEmptyArrays": true}},
	}
	collection := db.OpenCollections(models.AppointmentCollection)
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("Error from aggregate(window appointments): ", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		log.Println("Error decoding window appointments: ", err)
		return nil, err
	}
	return appointments, nil
}

/*
* Weekly templates for every doctor, normalized to seven entries each
 */
func fetchDoctorSchedules(ctx context.Context, selectedDoctor string) ([]models.DoctorSchedule, error) {
	userColl := db.OpenCollections(models.UserCollection)
	doctorFilter := bson.M{"userType": role.Doctor}
	if selectedDoctor != AllDoctors {
		doctorFilter["code"] = selectedDoctor
	}
	doctors, err := db.FindAll(ctx, userColl, doctorFilter, nil)
	if err != nil {
		log.Println("Error from findAll(doctors): ", err)
		return nil, err
	}

	schedColl := db.OpenCollections(models.ScheduleCollection)
	schedules := []models.DoctorSchedule{}
	for _, d := range doctors {
		doctor, ok := asDocument(d)
		if !ok {
			log.Println("Invalid doctor record: ", d)
			return nil, errors.New(UNABLE_TO_FETCH_DOCTOR_FROM_SCHEDULE)
		}
		code, ok := doctor["code"].(string)
		if !ok {
			log.Println("Doctor record missing code: ", doctor)
			return nil, errors.New(UNABLE_TO_FETCH_DOCTOR_FROM_SCHEDULE)
		}
		first, _ := doctor["firstName"].(string)
		last, _ := doctor["lastName"].(string)

		cursor, err := schedColl.Find(ctx, bson.M{"doctorId": code})
		if err != nil {
			log.Println("Error from find(schedule entries): ", err)
			return nil, err
		}
		var entries []models.WorkScheduleEntry
		if err := cursor.All(ctx, &entries); err != nil {
			log.Println("Error decoding schedule entries: ", err)
			return nil, err
		}
		schedules = append(schedules, models.DoctorSchedule{
			DoctorId:   code,
			DoctorName: strings.TrimSpace(first + " " + last),
			Entries:    NormalizeWeekSchedule(code, entries),
		})
	}
	return schedules, nil
}

/*
* Parse the visible window and doctor selection
* Doctors are pinned to their own calendar, admins pick freely
* Fetch schedules and window appointments, then materialize
 */
func GetCalendarEvents(c *gin.Context) ([]models.CalendarEvent, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}
	if viewerRole == role.Patient {
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}

	windowStart, err := parseWindowDate(c.Query("start"))
	if err != nil {
		return nil, err
	}
	windowEnd, err := parseWindowEnd(c.Query("end"))
	if err != nil {
		return nil, err
	}
	if windowEnd.Before(windowStart) {
		return nil, errors.New(INVALID_DATE_WINDOW)
	}

	selectedDoctor := c.DefaultQuery("doctorId", AllDoctors)
	if viewerRole == role.Doctor {
		selectedDoctor = viewerID
	}

	schedules, err := fetchDoctorSchedules(c, selectedDoctor)
	if err != nil {
		return nil, err
	}
	appointments, err := fetchWindowAppointments(c, selectedDoctor, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return BuildCalendarEvents(schedules, appointments, selectedDoctor, windowStart, windowEnd)
}

/*
* Accept a plain date or a full RFC3339 timestamp for the window bounds
 */
func parseWindowDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New(INVALID_DATE_WINDOW)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Println("Unparseable window date: ", s)
		return time.Time{}, errors.New(INVALID_DATE_WINDOW)
	}
	return t, nil
}

/*
* A date-only end bound means the whole final day is visible, so it widens
* to the last second of that day
* Keeps the appointment window query and the weekday expansion agreeing on
* the last day
 */
func parseWindowEnd(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New(INVALID_DATE_WINDOW)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.AddDate(0, 0, 1).Add(-time.Second), nil
	}
	return parseWindowDate(s)
}
