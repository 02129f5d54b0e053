package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo(db *mongo.Database) *MongoStaffRepo {
	return &MongoStaffRepo{coll: db.Collection("staff")}
}

// GetByID retrieves a staff document by ID.
func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching staff with id %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) find(ctx context.Context, filter bson.M) ([]models.Staff, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

// ListBySalon returns the staff of a salon sorted by name.
func (r *MongoStaffRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error) {
	return r.find(ctx, bson.M{"salonId": salonID})
}

// ListByUser returns the staff records linked to userID.
func (r *MongoStaffRepo) ListByUser(ctx context.Context, userID string) ([]models.Staff, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ExistsForUser reports whether userID works at salonID.
func (r *MongoStaffRepo) ExistsForUser(ctx context.Context, salonID, userID string) (bool, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"salonId": salonID, "userId": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking staff membership: %w", err)
	}
	return n > 0, nil
}

// Create inserts a new staff document.
func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}
