package models

import "time"

// RegisterPayload is the validated body for user registration.
type RegisterPayload struct {
	Name        string      `json:"name" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	AccountType AccountType `json:"accountType" binding:"required,oneof=patient prescriber"`
	Password    string      `json:"password" binding:"required,alphanum"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PrescriptionPayload is the validated body for creating a prescription.
// Prescriber fields are never taken from the body, they come from the
// caller's token identity.
type PrescriptionPayload struct {
	Interval        int       `json:"interval" binding:"required,min=1,max=4"`
	Prescription    string    `json:"prescription" binding:"required"`
	Unit            Unit      `json:"unit" binding:"required,oneof=ml capsules tablets"`
	Quantity        float64   `json:"quantity" binding:"required"`
	FurtherAdvice   string    `json:"furtherAdvice" binding:"required"`
	PatientEmail    string    `json:"patientEmail" binding:"required,email"`
	ExpectedDateEnd time.Time `json:"expectedDateEnd"`
}

// UpdatePrescriptionPayload is the full replacement document for an update.
// It is a superset of PrescriptionPayload carrying identity and status fields.
type UpdatePrescriptionPayload struct {
	ID              string    `json:"_id" binding:"required"`
	Interval        int       `json:"interval" binding:"required,min=1,max=4"`
	Prescription    string    `json:"prescription" binding:"required"`
	Unit            Unit      `json:"unit" binding:"required,oneof=ml capsules tablets"`
	Quantity        float64   `json:"quantity" binding:"required"`
	FurtherAdvice   string    `json:"furtherAdvice" binding:"required"`
	PatientEmail    string    `json:"patientEmail" binding:"required,email"`
	PatientName     string    `json:"patientName" binding:"required"`
	PrescriberName  string    `json:"prescriberName" binding:"required"`
	PrescriberEmail string    `json:"prescriberEmail" binding:"required,email"`
	Filled          *bool     `json:"filled" binding:"required"`
	Verified        *bool     `json:"verified" binding:"required"`
	DatePrescribed  time.Time `json:"datePrescribed"`
	ExpectedDateEnd time.Time `json:"expectedDateEnd"`
}

type ResetPasswordPayload struct {
	Password string `json:"password" binding:"required,alphanum"`
}

type SendResetCodePayload struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserPayload carries the profile fields a user may change.
type UpdateUserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}
