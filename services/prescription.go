package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Prescryber/auth"
	"Prescryber/models"
	"Prescryber/store"
	"Prescryber/utils"
)

var (
	ErrIncorrectPatientEmail = errors.New(utils.INCORRECT_PATIENT_EMAIL)
	ErrPrescriptionNotFound  = errors.New(utils.PRESCRIPTION_NOT_FOUND)
)

// PrescriptionService owns the prescription lifecycle. Authorization is not
// re-checked here, the guard chain in front of each route enforces it.
type PrescriptionService struct {
	Prescriptions store.PrescriptionStore
	Users         store.UserStore
}

/*
* Resolve the patient email before persisting anything
* Denormalize the patient's name into the record at creation time
* Prescriber fields come from the caller's token identity
 */
func (s *PrescriptionService) Create(ctx context.Context, payload models.PrescriptionPayload, prescriber auth.Identity) (models.Prescription, error) {
	patient, err := s.Users.FindByEmail(ctx, payload.PatientEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Prescription{}, ErrIncorrectPatientEmail
		}
		return models.Prescription{}, fmt.Errorf("looking up patient: %w", err)
	}

	now := time.Now()
	expectedDateEnd := payload.ExpectedDateEnd
	if expectedDateEnd.IsZero() {
		expectedDateEnd = now
	}

	prescription, err := s.Prescriptions.Create(ctx, models.Prescription{
		PrescriberName:  prescriber.Name,
		PrescriberEmail: prescriber.Email,
		PatientName:     patient.Name,
		PatientEmail:    patient.Email,
		Prescription:    payload.Prescription,
		Quantity:        payload.Quantity,
		Unit:            payload.Unit,
		Interval:        payload.Interval,
		FurtherAdvice:   payload.FurtherAdvice,
		DatePrescribed:  now,
		ExpectedDateEnd: expectedDateEnd,
		Filled:          false,
		Verified:        false,
	})
	if err != nil {
		return models.Prescription{}, fmt.Errorf("creating prescription: %w", err)
	}
	return prescription, nil
}

/*
* Find-and-replace by _id, every field except the identity
 */
func (s *PrescriptionService) Update(ctx context.Context, payload models.UpdatePrescriptionPayload) (models.Prescription, error) {
	replacement := models.Prescription{
		PrescriberName:  payload.PrescriberName,
		PrescriberEmail: payload.PrescriberEmail,
		PatientName:     payload.PatientName,
		PatientEmail:    payload.PatientEmail,
		Prescription:    payload.Prescription,
		Quantity:        payload.Quantity,
		Unit:            payload.Unit,
		Interval:        payload.Interval,
		FurtherAdvice:   payload.FurtherAdvice,
		DatePrescribed:  payload.DatePrescribed,
		ExpectedDateEnd: payload.ExpectedDateEnd,
		Filled:          *payload.Filled,
		Verified:        *payload.Verified,
	}

	prescription, err := s.Prescriptions.ReplaceByID(ctx, payload.ID, replacement)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Prescription{}, ErrPrescriptionNotFound
		}
		return models.Prescription{}, fmt.Errorf("updating prescription: %w", err)
	}
	return prescription, nil
}

// Delete removes a prescription and returns the removed record for
// confirmation. Role and ownership are gated upstream.
func (s *PrescriptionService) Delete(ctx context.Context, id string) (models.Prescription, error) {
	prescription, err := s.Prescriptions.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Prescription{}, ErrPrescriptionNotFound
		}
		return models.Prescription{}, fmt.Errorf("deleting prescription: %w", err)
	}
	return prescription, nil
}

// Get fetches one prescription by id.
func (s *PrescriptionService) Get(ctx context.Context, id string) (models.Prescription, error) {
	prescription, err := s.Prescriptions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Prescription{}, ErrPrescriptionNotFound
		}
		return models.Prescription{}, fmt.Errorf("fetching prescription: %w", err)
	}
	return prescription, nil
}

// ForUser returns only prescriptions the email participates in, as patient
// or as prescriber. A user never sees records they are not named on.
func (s *PrescriptionService) ForUser(ctx context.Context, email string) ([]models.Prescription, error) {
	prescriptions, err := s.Prescriptions.FindForUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing prescriptions: %w", err)
	}
	return prescriptions, nil
}

// All returns every prescription. Operator use only, no access narrowing.
func (s *PrescriptionService) All(ctx context.Context) ([]models.Prescription, error) {
	prescriptions, err := s.Prescriptions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prescriptions: %w", err)
	}
	return prescriptions, nil
}
