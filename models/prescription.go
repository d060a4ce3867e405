package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit is the closed set of dosage units a prescription may use.
type Unit string

const (
	UnitMl       Unit = "ml"
	UnitCapsules Unit = "capsules"
	UnitTablets  Unit = "tablets"
)

type Prescription struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PrescriberName  string             `json:"prescriberName" bson:"prescriberName"`
	PrescriberEmail string             `json:"prescriberEmail" bson:"prescriberEmail"`
	PatientName     string             `json:"patientName" bson:"patientName"`
	PatientEmail    string             `json:"patientEmail" bson:"patientEmail"`
	Prescription    string             `json:"prescription" bson:"prescription"`
	Quantity        float64            `json:"quantity" bson:"quantity"`
	Unit            Unit               `json:"unit" bson:"unit"`
	Interval        int                `json:"interval" bson:"interval"`
	FurtherAdvice   string             `json:"furtherAdvice,omitempty" bson:"furtherAdvice,omitempty"`
	DatePrescribed  time.Time          `json:"datePrescribed" bson:"datePrescribed"`
	ExpectedDateEnd time.Time          `json:"expectedDateEnd" bson:"expectedDateEnd"`
	Filled          bool               `json:"filled" bson:"filled"`
	Verified        bool               `json:"verified" bson:"verified"`
}
