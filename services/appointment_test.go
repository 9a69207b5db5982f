package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
)

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted, models.StatusNoShow} {
		assert.True(t, validAppointmentStatus(s), s)
	}
	assert.False(t, validAppointmentStatus("booked"))
	assert.False(t, validAppointmentStatus(""))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, isTerminalStatus(models.StatusCancelled))
	assert.True(t, isTerminalStatus(models.StatusCompleted))
	assert.False(t, isTerminalStatus(models.StatusPending))
	assert.False(t, isTerminalStatus(models.StatusConfirmed))
	assert.False(t, isTerminalStatus(models.StatusNoShow))
}

func TestValidateAppointmentInput(t *testing.T) {
	data := map[string]interface{}{
		"doctorId":    "D0001",
		"date":        "2026-01-12",
		"time":        "10:30",
		"description": "Follow-up",
	}
	assert.NoError(t, validateAppointmentInput(data))

	delete(data, "description")
	assert.Error(t, validateAppointmentInput(data))
}

func TestAppointmentDatetime(t *testing.T) {
	data := map[string]interface{}{"date": "2026-01-12", "time": "10:30"}
	dt, err := appointmentDatetime(data)
	assert.NoError(t, err)
	assert.Equal(t, 2026, dt.Year())
	assert.Equal(t, time.January, dt.Month())
	assert.Equal(t, 12, dt.Day())
	assert.Equal(t, 10, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	data["date"] = "12-01-2026"
	_, err = appointmentDatetime(data)
	assert.EqualError(t, err, INVALID_DATE_WINDOW)

	data["date"] = "2026-01-12"
	data["time"] = "10:30 AM"
	_, err = appointmentDatetime(data)
	assert.EqualError(t, err, INVALID_TIME_FORMAT)
}

func TestCheckStatusAccess(t *testing.T) {
	appointment := map[string]interface{}{
		"patientId": "P0001",
		"doctorId":  "D0001",
		"status":    models.StatusPending,
	}

	// patient may only cancel their own appointment
	assert.NoError(t, checkStatusAccess("Patient", "P0001", models.StatusCancelled, appointment))
	assert.Error(t, checkStatusAccess("Patient", "P0001", models.StatusConfirmed, appointment))
	assert.Error(t, checkStatusAccess("Patient", "P0002", models.StatusCancelled, appointment))

	// doctor may change status on their own appointments only
	assert.NoError(t, checkStatusAccess("Doctor", "D0001", models.StatusConfirmed, appointment))
	assert.NoError(t, checkStatusAccess("Doctor", "D0001", models.StatusNoShow, appointment))
	assert.Error(t, checkStatusAccess("Doctor", "D0002", models.StatusConfirmed, appointment))

	// admin is unrestricted
	assert.NoError(t, checkStatusAccess("Admin", "A0001", models.StatusCompleted, appointment))
}
