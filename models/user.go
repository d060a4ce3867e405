package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AccountType is the closed set of roles a user can hold.
type AccountType string

const (
	AccountTypePatient    AccountType = "patient"
	AccountTypePrescriber AccountType = "prescriber"
)

type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	AccountType AccountType        `json:"accountType" bson:"accountType"`
	Password    string             `json:"-" bson:"password"`
}
