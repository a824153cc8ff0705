package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

// Create inserts a new appointment document. A duplicate-key violation on the
// slot index means another writer won the (date, time) race; it is reported
// as domain.ErrSlotTaken.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns appointments matching filter, ordered by date then time.
func (r *AppointmentRepository) List(ctx context.Context, filter ports.ListAppointmentsFilter) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	sort := bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	cur, err := r.col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	appointments := []*domain.Appointment{}
	if err := cur.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindSlot returns the non-cancelled appointment occupying (date, time),
// skipping excludeID when non-empty.
func (r *AppointmentRepository) FindSlot(ctx context.Context, date, timeSlot, excludeID string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"date":   date,
		"time":   timeSlot,
		"status": bson.M{"$ne": string(domain.StatusCancelled)},
	}
	if excludeID != "" {
		query["_id"] = bson.M{"$ne": excludeID}
	}

	var a domain.Appointment
	err := r.col.FindOne(ctx, query).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateStatus overwrites the status field and returns the updated document.
// Reactivating a cancelled appointment makes it re-enter the partial unique
// index; if another non-cancelled appointment took the slot in the meantime,
// the update fails with domain.ErrSlotTaken.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlotTaken
		}
		return nil, err
	}
	return &a, nil
}

// Delete removes the appointment document.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// CountByClientAndStatus counts the client's appointments in the given status.
func (r *AppointmentRepository) CountByClientAndStatus(ctx context.Context, clientID string, status domain.AppointmentStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{
		"client_id": clientID,
		"status":    string(status),
	})
}

// ensureAppointmentIndexes creates the agenda indexes. The (date, time) index
// is unique but only over non-cancelled documents, so a cancelled appointment
// frees its slot while double-booking an open slot fails at the store.
func ensureAppointmentIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{
						string(domain.StatusScheduled),
						string(domain.StatusCompleted),
					}},
				}),
		},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := db.Collection(collectionAppointments).Indexes().CreateMany(ctx, indexes)
	return err
}
