package salonRepo

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

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo(db *mongo.Database) *MongoSalonRepo {
	return &MongoSalonRepo{coll: db.Collection("salons")}
}

// GetByID retrieves a salon document by ID.
func (r *MongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching salon with id %s: %w", id, err)
	}
	return &salon, nil
}

func (r *MongoSalonRepo) find(ctx context.Context, filter bson.M) ([]models.Salon, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching salons: %w", err)
	}
	defer cursor.Close(ctx)

	salons := []models.Salon{}
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("error decoding salons: %w", err)
	}
	return salons, nil
}

// ListByOwner returns the salons owned by ownerID.
func (r *MongoSalonRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

// List returns all salons sorted by name.
func (r *MongoSalonRepo) List(ctx context.Context) ([]models.Salon, error) {
	return r.find(ctx, bson.M{})
}

// Create inserts a new salon document.
func (r *MongoSalonRepo) Create(ctx context.Context, salon *models.Salon) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, salon); err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

func (r *MongoSalonRepo) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("salon with id %s not found", id)
	}
	return nil
}

// UpdateWorkingHours replaces the weekly schedule of a salon.
func (r *MongoSalonRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	return r.set(ctx, id, bson.M{"workingHours": hours})
}

// UpdateHolidays replaces the holiday calendar of a salon.
func (r *MongoSalonRepo) UpdateHolidays(ctx context.Context, id string, holidays []time.Time) error {
	return r.set(ctx, id, bson.M{"holidays": holidays})
}
