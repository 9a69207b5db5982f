package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

const (
	displayDateLayout = "02-Jan-2006"
	displayTimeLayout = "3:04 PM"
)

// chooseDisplayedAppointment kinds
const (
	choiceUpcoming = "upcoming"
	choicePast     = "past"
	choiceNone     = "none"
)

type appointmentChoice struct {
	Kind        string
	Appointment map[string]interface{}
}

/*
* Prefer the upcoming confirmed appointment over the latest past one
* regardless of how recent the past one is
* None when the patient has neither
 */
func chooseDisplayedAppointment(patient map[string]interface{}) appointmentChoice {
	if apt, ok := asDocument(patient["upcomingAppointment"]); ok {
		return appointmentChoice{Kind: choiceUpcoming, Appointment: apt}
	}
	if apt, ok := asDocument(patient["latestPastAppointment"]); ok {
		return appointmentChoice{Kind: choicePast, Appointment: apt}
	}
	return appointmentChoice{Kind: choiceNone}
}

// hasMorePages is the pagination contract: more pages exist while the current
// window ends before the total filtered count.
func hasMorePages(page, limit, total int) bool {
	return page*limit < total
}

/*
* One $lookup against APPOINTMENTS per derived field
* Sub-pipeline keeps confirmed appointments of this patient on the wanted
* side of now, restricted to the viewer when the viewer is a doctor
* Sorted nearest-first, limited to one, then unwound in place
 */
func appointmentLookup(as, viewerRole, viewerID string, now time.Time, upcoming bool) []bson.M {
	match := bson.M{
		"$expr":  bson.M{"$eq": []string{"$patientId", "$$patientCode"}},
		"status": models.StatusConfirmed,
	}
	order := 1
	if upcoming {
		match["datetime"] = bson.M{"$gte": now}
	} else {
		match["datetime"] = bson.M{"$lt": now}
		order = -1
	}
	if viewerRole == role.Doctor {
		match["doctorId"] = viewerID
	}
	return []bson.M{
		{"$lookup": bson.M{
			"from": models.AppointmentCollection,
			"let":  bson.M{"patientCode": "$code"},
			"pipeline": []bson.M{
				{"$match": match},
				{"$sort": bson.M{"datetime": order}},
				{"$limit": 1},
			},
			"as": as,
		}},
		{"$unwind": bson.M{"path": "$" + as, "preserveNullAndEmptyArrays": true}},
	}
}

/*
* Pure pipeline construction, no incremental mutation of shared state
* Base match on userType, doctor viewers restricted to their own patients
* Doctor/Admin get the two appointment joins and the extra projection keys
* Sorted by creation time descending then faceted into page data and count
 */
func buildPatientPipeline(viewerRole, viewerID string, patientCodes []string, now time.Time, page, limit int) []bson.M {
	match := bson.M{"userType": role.Patient}
	if viewerRole == role.Doctor {
		match["code"] = bson.M{"$in": patientCodes}
	}

	projection := bson.M{
		"profilePicture": 1,
		"firstName":      1,
		"lastName":       1,
		"phoneNo":        1,
		"gender":         1,
		"age":            1,
		"code":           1,
		"dob":            1,
	}

	pipeline := []bson.M{{"$match": match}}
	if viewerRole != role.Patient {
		pipeline = append(pipeline, appointmentLookup("upcomingAppointment", viewerRole, viewerID, now, true)...)
		pipeline = append(pipeline, appointmentLookup("latestPastAppointment", viewerRole, viewerID, now, false)...)
		projection["upcomingAppointment"] = 1
		projection["latestPastAppointment"] = 1
	}

	pipeline = append(pipeline,
		// _id keeps $skip stable under equal createdAt values
		bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}},
		bson.M{"$project": projection},
		bson.M{"$facet": bson.M{
			"data": []bson.M{
				{"$skip": (page - 1) * limit},
				{"$limit": limit},
			},
			"meta": []bson.M{
				{"$count": "count"},
			},
		}},
	)
	return pipeline
}

/*
* Distinct patient ids over the appointment collection scoped to this doctor
 */
func patientCodesForDoctor(ctx context.Context, doctorId string) ([]string, error) {
	collection := db.OpenCollections(models.AppointmentCollection)
	raw, err := collection.Distinct(ctx, "patientId", bson.M{"doctorId": doctorId})
	if err != nil {
		log.Println("Error from distinct(patientId): ", err)
		return nil, err
	}
	codes := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			codes = append(codes, s)
		}
	}
	return codes, nil
}

/*
* Resolve a doctor code to a display name
* A doctor that no longer exists resolves to empty, not an error
 */
func resolveDoctorName(ctx context.Context, doctorId string) (string, error) {
	collection := db.OpenCollections(models.UserCollection)
	doctor := make(map[string]interface{})
	err := db.FindOne(ctx, collection, bson.M{"code": doctorId, "userType": role.Doctor}, &doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		log.Println("Error from findOne(while resolving doctor name): ", err)
		return "", err
	}
	first, _ := doctor["firstName"].(string)
	last, _ := doctor["lastName"].(string)
	return strings.TrimSpace(first + " " + last), nil
}

/*
* Attach the displayed-appointment fields to one patient document
* All display fields stay nil when no appointment was joined
 */
func decoratePatient(ctx context.Context, patient map[string]interface{}) error {
	choice := chooseDisplayedAppointment(patient)

	// Doctor/Admin results always carry both derived keys, possibly null
	if _, ok := patient["upcomingAppointment"]; !ok {
		patient["upcomingAppointment"] = nil
	}
	if _, ok := patient["latestPastAppointment"]; !ok {
		patient["latestPastAppointment"] = nil
	}

	if choice.Kind == choiceNone {
		patient["appointmentDate"] = nil
		patient["appointmentTime"] = nil
		patient["description"] = nil
		patient["doctor"] = nil
		patient["status"] = nil
		return nil
	}

	apt := choice.Appointment
	dt, ok := asTime(apt["datetime"])
	if !ok {
		log.Println("Appointment datetime missing or malformed: ", apt["code"])
		return errors.New(APPOINTMENT_FIELD_IS_EMPTY)
	}
	doctorId, _ := apt["doctorId"].(string)
	name, err := resolveDoctorName(ctx, doctorId)
	if err != nil {
		return err
	}
	patient["appointmentDate"] = dt.Format(displayDateLayout)
	patient["appointmentTime"] = dt.Format(displayTimeLayout)
	patient["description"] = apt["description"]
	patient["status"] = apt["status"]
	if name == "" {
		patient["doctor"] = nil
	} else {
		patient["doctor"] = name
	}
	return nil
}

/*
* Doctor-name resolution fans out one lookup per patient
* A single failed lookup fails the whole batch, no partial results
 */
func decoratePatients(ctx context.Context, patients []map[string]interface{}) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range patients {
		patient := p
		g.Go(func() error {
			return decoratePatient(gctx, patient)
		})
	}
	return g.Wait()
}

/*
* Resolve viewer role and pagination
* Doctor viewers first collect their distinct patient ids
* Run the aggregation, decode the facet, decorate for Doctor/Admin
* Return patients plus the pagination envelope
 */
func GetPatients(c *gin.Context) (map[string]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}
	page, limit := parsePagination(c)
	now := time.Now()

	var patientCodes []string
	if viewerRole == role.Doctor {
		patientCodes, err = patientCodesForDoctor(c, viewerID)
		if err != nil {
			log.Println("Error from patientCodesForDoctor: ", err)
			return nil, err
		}
	}

	pipeline := buildPatientPipeline(viewerRole, viewerID, patientCodes, now, page, limit)
	collection := db.OpenCollections(models.UserCollection)
	cursor, err := collection.Aggregate(c, pipeline)
	if err != nil {
		log.Println("Error from aggregate(patients): ", err)
		return nil, err
	}
	defer cursor.Close(c)

	if !cursor.Next(c) {
		log.Println("Empty facet result from patient pipeline")
		return nil, errors.New(UNABLE_TO_FETCH_PIPELINE_RESULT)
	}
	var result struct {
		Data []map[string]interface{} `bson:"data"`
		Meta []struct {
			Count int `bson:"count"`
		} `bson:"meta"`
	}
	if err := cursor.Decode(&result); err != nil {
		log.Println("Error decoding patient pipeline result: ", err)
		return nil, err
	}

	total := 0
	if len(result.Meta) > 0 {
		total = result.Meta[0].Count
	}
	patients := result.Data
	if patients == nil {
		patients = []map[string]interface{}{}
	}

	if viewerRole != role.Patient {
		if err := decoratePatients(c, patients); err != nil {
			log.Println("Error from decoratePatients: ", err)
			return nil, err
		}
	}

	return map[string]interface{}{
		"patients": patients,
		"pagination": map[string]interface{}{
			"currentPage": page,
			"hasMore":     hasMorePages(page, limit, total),
		},
	}, nil
}

/*
* Fetch a single patient by code
* Patients can only fetch themselves, doctors and admins any patient
 */
func FetchPatientByCode(c *gin.Context, patientId string) (map[string]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}
	if viewerRole == role.Patient && viewerID != patientId {
		log.Println("Patient tried to fetch another patient: ", viewerID)
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}
	collection := db.OpenCollections(models.UserCollection)
	result := make(map[string]interface{})
	filter := bson.M{"code": patientId, "userType": role.Patient}
	err = db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne(while fetching patient): ", err)
		return nil, errors.New(PATIENT_NOT_FOUND)
	}
	delete(result, "password")
	return result, nil
}

/*
* If fields provided, trim them and append to the update
* Patients can only update themselves, admins anyone, doctors nobody
* Update and confirm a document matched
 */
func UpdatePatientByCode(c *gin.Context, patientId string, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Doctor {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	if viewerRole == role.Patient && viewerID != patientId {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	fields := []string{"firstName", "lastName", "phoneNo", "gender", "dob", "profilePicture"}
	update := bson.M{}
	for _, f := range fields {
		if v, ok := data[f].(string); ok {
			update[f] = strings.TrimSpace(v)
		}
	}
	if len(update) == 0 {
		return "", errors.New("No fields provided to update")
	}
	update["updatedBy"] = viewerID
	update["updatedAt"] = time.Now()

	collection := db.OpenCollections(models.UserCollection)
	filter := bson.M{"code": patientId, "userType": role.Patient}
	updated, err := db.UpdateOne(c, collection, filter, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne(patient): ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(PATIENT_NOT_FOUND)
	}
	log.Println("Updated patient: ", updated.ModifiedCount)
	return "Updated Successfully", nil
}
