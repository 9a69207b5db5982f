package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LabTest struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	PatientId string             `json:"patientId" bson:"patientId"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	TestType  string             `json:"testType" bson:"testType"`
	Status    string             `json:"status" bson:"status"` // requested | in-progress | completed
	Result    string             `json:"result,omitempty" bson:"result,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string             `json:"updatedBy" bson:"updatedBy"`
}

type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	PatientId     string             `json:"patientId" bson:"patientId"`
	AppointmentId string             `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Amount        float64            `json:"amount" bson:"amount"`
	Method        string             `json:"method" bson:"method"`
	Status        string             `json:"status" bson:"status"` // pending | paid | refunded
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}

type Note struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	PatientId string             `json:"patientId" bson:"patientId"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string             `json:"updatedBy" bson:"updatedBy"`
}
