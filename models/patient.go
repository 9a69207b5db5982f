package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	PatientId   string             `json:"patientId" bson:"patientId"`
	DoctorId    string             `json:"doctorId" bson:"doctorId"`
	Datetime    time.Time          `json:"datetime" bson:"datetime"`
	StartTime   string             `json:"startTime,omitempty" bson:"startTime,omitempty"` // HH:mm, optional
	EndTime     string             `json:"endTime,omitempty" bson:"endTime,omitempty"`     // HH:mm, optional
	Status      string             `json:"status" bson:"status"`
	Description string             `json:"description" bson:"description"`
	Patient     *User              `json:"patient,omitempty" bson:"patient,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}

type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	FirstName      string             `json:"firstName" bson:"firstName"`
	LastName       string             `json:"lastName" bson:"lastName"`
	Email          string             `json:"email" bson:"email"`
	PhoneNo        string             `json:"phoneNo" bson:"phoneNo"`
	Gender         string             `json:"gender" bson:"gender"`
	Age            int                `json:"age" bson:"age"`
	DOB            string             `json:"dob" bson:"dob"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
	UserType       string             `json:"userType" bson:"userType"`
	Password       string             `json:"password,omitempty" bson:"password,omitempty"`
	Token          string             `json:"token,omitempty" bson:"token,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
