package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

func TestChooseDisplayedAppointment_PrefersUpcoming(t *testing.T) {
	patient := map[string]interface{}{
		"upcomingAppointment":   bson.M{"code": "A0002"},
		"latestPastAppointment": bson.M{"code": "A0001"},
	}
	choice := chooseDisplayedAppointment(patient)
	assert.Equal(t, choiceUpcoming, choice.Kind)
	assert.Equal(t, "A0002", choice.Appointment["code"])
}

func TestChooseDisplayedAppointment_FallsBackToPast(t *testing.T) {
	patient := map[string]interface{}{
		"upcomingAppointment":   nil,
		"latestPastAppointment": bson.M{"code": "A0001"},
	}
	choice := chooseDisplayedAppointment(patient)
	assert.Equal(t, choicePast, choice.Kind)
	assert.Equal(t, "A0001", choice.Appointment["code"])
}

func TestChooseDisplayedAppointment_None(t *testing.T) {
	choice := chooseDisplayedAppointment(map[string]interface{}{})
	assert.Equal(t, choiceNone, choice.Kind)
	assert.Nil(t, choice.Appointment)
}

func TestHasMorePages(t *testing.T) {
	// 45 patients at 20 per page span three pages
	assert.True(t, hasMorePages(1, 20, 45))
	assert.True(t, hasMorePages(2, 20, 45))
	assert.False(t, hasMorePages(3, 20, 45))

	// exact fit has no extra page
	assert.False(t, hasMorePages(2, 20, 40))
	assert.False(t, hasMorePages(1, 20, 0))
}

func stageKeys(pipeline []bson.M) []string {
	keys := []string{}
	for _, stage := range pipeline {
		for k := range stage {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestBuildPatientPipeline_PatientViewerHasNoJoins(t *testing.T) {
	pipeline := buildPatientPipeline(role.Patient, "P0001", nil, time.Now(), 1, 20)

	assert.NotContains(t, stageKeys(pipeline), "$lookup")

	var projection bson.M
	for _, stage := range pipeline {
		if p, ok := stage["$project"]; ok {
			projection = p.(bson.M)
		}
	}
	assert.NotNil(t, projection)
	assert.NotContains(t, projection, "upcomingAppointment")
	assert.NotContains(t, projection, "latestPastAppointment")
}

func TestBuildPatientPipeline_AdminViewerHasBothJoins(t *testing.T) {
	pipeline := buildPatientPipeline(role.Admin, "A0001", nil, time.Now(), 1, 20)

	lookups := 0
	for _, stage := range pipeline {
		if _, ok := stage["$lookup"]; ok {
			lookups++
		}
	}
	assert.Equal(t, 2, lookups)

	var projection bson.M
	for _, stage := range pipeline {
		if p, ok := stage["$project"]; ok {
			projection = p.(bson.M)
		}
	}
	assert.Contains(t, projection, "upcomingAppointment")
	assert.Contains(t, projection, "latestPastAppointment")
}

func TestBuildPatientPipeline_DoctorViewerRestrictsPatientsAndJoins(t *testing.T) {
	codes := []string{"P0001", "P0002"}
	pipeline := buildPatientPipeline(role.Doctor, "D0001", codes, time.Now(), 1, 20)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, bson.M{"$in": codes}, match["code"])
	assert.Equal(t, role.Patient, match["userType"])

	// each join's sub-pipeline is scoped to the viewing doctor
	for _, stage := range pipeline {
		lookup, ok := stage["$lookup"]
		if !ok {
			continue
		}
		sub := lookup.(bson.M)["pipeline"].([]bson.M)
		subMatch := sub[0]["$match"].(bson.M)
		assert.Equal(t, "D0001", subMatch["doctorId"])
	}
}

func TestBuildPatientPipeline_Facet(t *testing.T) {
	pipeline := buildPatientPipeline(role.Admin, "A0001", nil, time.Now(), 3, 10)

	facet := pipeline[len(pipeline)-1]["$facet"].(bson.M)
	data := facet["data"].([]bson.M)
	assert.Equal(t, 20, data[0]["$skip"])
	assert.Equal(t, 10, data[1]["$limit"])
	assert.NotNil(t, facet["meta"])
}

func TestAppointmentLookup_Sides(t *testing.T) {
	now := time.Now()

	upcoming := appointmentLookup("upcomingAppointment", role.Admin, "A0001", now, true)
	sub := upcoming[0]["$lookup"].(bson.M)["pipeline"].([]bson.M)
	match := sub[0]["$match"].(bson.M)
	assert.Equal(t, bson.M{"$gte": now}, match["datetime"])
	assert.Equal(t, bson.M{"datetime": 1}, sub[1]["$sort"])

	past := appointmentLookup("latestPastAppointment", role.Admin, "A0001", now, false)
	sub = past[0]["$lookup"].(bson.M)["pipeline"].([]bson.M)
	match = sub[0]["$match"].(bson.M)
	assert.Equal(t, bson.M{"$lt": now}, match["datetime"])
	assert.Equal(t, bson.M{"datetime": -1}, sub[1]["$sort"])

	unwind := past[1]["$unwind"].(bson.M)
	assert.Equal(t, "$latestPastAppointment", unwind["path"])
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestDecoratePatient_NoAppointmentNullsDisplayFields(t *testing.T) {
	patient := map[string]interface{}{"code": "P0001"}
	err := decoratePatient(nil, patient)
	assert.NoError(t, err)

	for _, key := range []string{"appointmentDate", "appointmentTime", "description", "doctor", "status", "upcomingAppointment", "latestPastAppointment"} {
		v, ok := patient[key]
		assert.True(t, ok, key)
		assert.Nil(t, v, key)
	}
}
