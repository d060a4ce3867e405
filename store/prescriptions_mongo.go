package store

import (
	"context"
	"errors"
	"time"

	"Prescryber/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPrescriptionStore implements PrescriptionStore on a mongo collection.
type MongoPrescriptionStore struct {
	coll *mongo.Collection
}

func NewMongoPrescriptionStore(db *mongo.Database) *MongoPrescriptionStore {
	return &MongoPrescriptionStore{coll: db.Collection(prescriptionCollection)}
}

func (s *MongoPrescriptionStore) FindByID(ctx context.Context, id string) (models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Prescription{}, ErrNotFound
	}
	var prescription models.Prescription
	err = s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Prescription{}, ErrNotFound
		}
		return models.Prescription{}, err
	}
	return prescription, nil
}

func (s *MongoPrescriptionStore) FindForUser(ctx context.Context, email string) ([]models.Prescription, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"patientEmail": email},
		bson.M{"prescriberEmail": email},
	}}
	return s.findMany(ctx, filter)
}

func (s *MongoPrescriptionStore) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return s.findMany(ctx, bson.M{})
}

func (s *MongoPrescriptionStore) FindDue(ctx context.Context, interval int, since time.Time) ([]models.Prescription, error) {
	filter := bson.M{
		"expectedDateEnd": bson.M{"$gte": since},
		"filled":          false,
		"verified":        true,
		"interval":        interval,
	}
	return s.findMany(ctx, filter)
}

func (s *MongoPrescriptionStore) findMany(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	prescriptions := []models.Prescription{}
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (s *MongoPrescriptionStore) Create(ctx context.Context, prescription models.Prescription) (models.Prescription, error) {
	prescription.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, prescription); err != nil {
		return models.Prescription{}, err
	}
	return prescription, nil
}

/*
* Find-and-replace everything except the identity
* Returns the replaced document in its new state
 */
func (s *MongoPrescriptionStore) ReplaceByID(ctx context.Context, id string, prescription models.Prescription) (models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Prescription{}, ErrNotFound
	}
	prescription.ID = objectID

	var replaced models.Prescription
	err = s.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": objectID},
		prescription,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&replaced)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Prescription{}, ErrNotFound
		}
		return models.Prescription{}, err
	}
	return replaced, nil
}

func (s *MongoPrescriptionStore) DeleteByID(ctx context.Context, id string) (models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Prescription{}, ErrNotFound
	}
	var prescription models.Prescription
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Prescription{}, ErrNotFound
		}
		return models.Prescription{}, err
	}
	return prescription, nil
}
