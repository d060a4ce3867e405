package services

import (
	"context"
	"errors"
	"time"

	"Prescryber/models"
	"Prescryber/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the mongo stores.

type fakeUserStore struct {
	users map[string]models.User // keyed by email
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	for _, user := range f.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) UpdateByID(_ context.Context, id string, update store.UserUpdate) (models.User, error) {
	for email, user := range f.users {
		if user.ID.Hex() != id {
			continue
		}
		if update.Name != "" {
			user.Name = update.Name
		}
		if update.Email != "" {
			delete(f.users, email)
			user.Email = update.Email
		}
		if update.Password != "" {
			user.Password = update.Password
		}
		f.users[user.Email] = user
		return user, nil
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) DeleteByID(_ context.Context, id string) (models.User, error) {
	for email, user := range f.users {
		if user.ID.Hex() == id {
			delete(f.users, email)
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

type fakePrescriptionStore struct {
	docs map[string]models.Prescription // keyed by hex id
}

func newFakePrescriptionStore() *fakePrescriptionStore {
	return &fakePrescriptionStore{docs: map[string]models.Prescription{}}
}

func (f *fakePrescriptionStore) FindByID(_ context.Context, id string) (models.Prescription, error) {
	prescription, ok := f.docs[id]
	if !ok {
		return models.Prescription{}, store.ErrNotFound
	}
	return prescription, nil
}

func (f *fakePrescriptionStore) FindForUser(_ context.Context, email string) ([]models.Prescription, error) {
	matches := []models.Prescription{}
	for _, p := range f.docs {
		if p.PatientEmail == email || p.PrescriberEmail == email {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakePrescriptionStore) FindAll(context.Context) ([]models.Prescription, error) {
	all := []models.Prescription{}
	for _, p := range f.docs {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakePrescriptionStore) FindDue(_ context.Context, interval int, since time.Time) ([]models.Prescription, error) {
	due := []models.Prescription{}
	for _, p := range f.docs {
		if !p.Filled && p.Verified && p.Interval == interval && !p.ExpectedDateEnd.Before(since) {
			due = append(due, p)
		}
	}
	return due, nil
}

func (f *fakePrescriptionStore) Create(_ context.Context, p models.Prescription) (models.Prescription, error) {
	p.ID = primitive.NewObjectID()
	f.docs[p.ID.Hex()] = p
	return p, nil
}

func (f *fakePrescriptionStore) ReplaceByID(_ context.Context, id string, p models.Prescription) (models.Prescription, error) {
	existing, ok := f.docs[id]
	if !ok {
		return models.Prescription{}, store.ErrNotFound
	}
	p.ID = existing.ID
	f.docs[id] = p
	return p, nil
}

func (f *fakePrescriptionStore) DeleteByID(_ context.Context, id string) (models.Prescription, error) {
	prescription, ok := f.docs[id]
	if !ok {
		return models.Prescription{}, store.ErrNotFound
	}
	delete(f.docs, id)
	return prescription, nil
}

var errSMTPDown = errors.New("smtp down")

// fakeSender records outgoing mail instead of dialing SMTP.
type fakeSender struct {
	fail bool
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeSender) Send(to string, subject string, body string) error {
	if f.fail {
		return errSMTPDown
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
